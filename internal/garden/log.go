// Package garden owns the ordered log of care events and answers
// scheduling queries over it.
package garden

import (
	"sort"
	"strings"
	"time"

	"github.com/leafwise/gardenlog/internal/model"
	"github.com/leafwise/gardenlog/internal/schedule"
	"github.com/leafwise/gardenlog/internal/storage"
)

// Log holds the in-memory copy of the care-event log backed by a single
// JSON file. One Log instance exclusively owns its file for the process
// lifetime; there is no cross-process locking.
type Log struct {
	path    string
	entries []model.Entry
	now     func() time.Time
}

// EntryInput is the caller-supplied part of a new log entry. Timestamp is
// optional; the zero value means "now".
type EntryInput struct {
	PlantName string
	Action    string
	Notes     string
	Timestamp time.Time
}

// DueTask is a derived projection of the next due occurrence of a
// recurring action for one plant. It is never persisted.
type DueTask struct {
	PlantName string
	Action    string
	DueAt     time.Time
}

// Open loads the log at path. A missing file yields an empty log; an
// unreadable or corrupt file is fatal, since a log constructed over lost
// history could silently violate every guarantee the queries make.
func Open(path string) (*Log, error) {
	entries, err := storage.Load(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return &Log{path: path, entries: entries, now: time.Now}, nil
}

// Len returns the number of entries in the log.
func (l *Log) Len() int { return len(l.entries) }

// Append validates the input, assigns a timestamp, persists the full log
// and returns the committed entry. On a failed write the in-memory log is
// rolled back so it stays consistent with the file.
func (l *Log) Append(in EntryInput) (model.Entry, error) {
	plant := strings.TrimSpace(in.PlantName)
	action := strings.TrimSpace(in.Action)
	if plant == "" {
		return model.Entry{}, &ValidationError{Field: "plant_name", Reason: "must not be empty"}
	}
	if action == "" {
		return model.Entry{}, &ValidationError{Field: "action", Reason: "must not be empty"}
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = l.now()
		// Clock regressions must not break the storage-order invariant.
		if last, ok := l.latest(); ok && ts.Before(last) {
			ts = last
		}
	} else if last, ok := l.latest(); ok && ts.Before(last) {
		return model.Entry{}, &ValidationError{
			Field:  "timestamp",
			Reason: "must not precede the newest log entry",
		}
	}

	entry := model.Entry{
		Timestamp: ts,
		PlantName: plant,
		Action:    action,
		Notes:     strings.TrimSpace(in.Notes),
	}

	l.entries = append(l.entries, entry)
	if err := storage.Save(l.path, l.entries); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		return model.Entry{}, &PersistenceError{Op: "save", Err: err}
	}
	return entry, nil
}

// latest returns the timestamp of the newest entry.
func (l *Log) latest() (time.Time, bool) {
	if len(l.entries) == 0 {
		return time.Time{}, false
	}
	return l.entries[len(l.entries)-1].Timestamp, true
}

// Recent returns up to limit entries, most recent first. Storage order is
// non-decreasing in time, so this is simply reverse storage order; among
// equal timestamps the later-appended entry comes first.
func (l *Log) Recent(limit int) []model.Entry {
	if limit <= 0 {
		return nil
	}
	n := len(l.entries)
	if limit > n {
		limit = n
	}
	out := make([]model.Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// NextDue returns the next due date for the given plant/action pair:
// the timestamp of the most recent matching entry plus the action's
// recurrence interval. It returns false when no entry matches or the
// action has no recurrence rule.
func (l *Log) NextDue(plantName, action string) (time.Time, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if e.PlantName == plantName && e.Action == action {
			return schedule.NextDue(e.Timestamp, action)
		}
	}
	return time.Time{}, false
}

// Upcoming computes the due tasks whose due date falls within
// [asOf, asOf + horizonDays]. For every distinct (plant, action) pair the
// most recent entry determines the due date; pairs whose action has no
// recurrence rule are excluded. Results are sorted by due date, then
// plant and action.
func (l *Log) Upcoming(asOf time.Time, horizonDays int) []DueTask {
	horizon := asOf.Add(time.Duration(horizonDays) * 24 * time.Hour)

	type pair struct{ plant, action string }
	seen := make(map[pair]bool)
	var tasks []DueTask

	// Walk newest-first so the first entry seen per pair is the most recent.
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		p := pair{e.PlantName, e.Action}
		if seen[p] {
			continue
		}
		seen[p] = true

		due, ok := schedule.NextDue(e.Timestamp, e.Action)
		if !ok {
			continue
		}
		if due.Before(asOf) || due.After(horizon) {
			continue
		}
		tasks = append(tasks, DueTask{PlantName: e.PlantName, Action: e.Action, DueAt: due})
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].DueAt.Equal(tasks[j].DueAt) {
			return tasks[i].DueAt.Before(tasks[j].DueAt)
		}
		if tasks[i].PlantName != tasks[j].PlantName {
			return tasks[i].PlantName < tasks[j].PlantName
		}
		return tasks[i].Action < tasks[j].Action
	})
	return tasks
}
