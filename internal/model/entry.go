package model

import "time"

// Entry represents a single recorded care action. Entries are immutable
// once appended: the log is an append-only sequence and storage order
// equals append order.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	PlantName string    `json:"plant_name"`
	Action    string    `json:"action"`
	Notes     string    `json:"notes"`
}
