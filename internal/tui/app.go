// Package tui is the interactive form for logging care actions and
// browsing recent entries and upcoming tasks.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafwise/gardenlog/internal/garden"
	"github.com/leafwise/gardenlog/internal/model"
	"github.com/leafwise/gardenlog/internal/schedule"
)

const (
	fieldPlant = iota
	fieldAction
	fieldNotes
	fieldCount
)

const (
	recentLimit = 8
	horizonDays = 14
)

// App is the root Bubble Tea model.
type App struct {
	log *garden.Log

	fields    [fieldCount]textinput.Model
	activeIdx int

	recent   []model.Entry
	upcoming []garden.DueTask

	statusMsg string
	width     int
	height    int
}

// New creates the TUI app over an opened log.
func New(log *garden.Log) App {
	labels := [fieldCount]string{"plant name", "action (watered, fertilized, pruned...)", "notes (optional)"}
	var fields [fieldCount]textinput.Model
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 128
		fields[i] = ti
	}
	fields[fieldPlant].Focus()

	a := App{log: log, fields: fields}
	a.refresh()
	return a
}

// Init sets the window title.
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("gardenlog"))
}

// Update handles key and window events.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit

		case "tab", "down":
			a.fields[a.activeIdx].Blur()
			a.activeIdx = (a.activeIdx + 1) % fieldCount
			a.fields[a.activeIdx].Focus()
			return a, textinput.Blink

		case "shift+tab", "up":
			a.fields[a.activeIdx].Blur()
			a.activeIdx = (a.activeIdx - 1 + fieldCount) % fieldCount
			a.fields[a.activeIdx].Focus()
			return a, textinput.Blink

		case "enter":
			a.submit()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.fields[a.activeIdx], cmd = a.fields[a.activeIdx].Update(msg)
	return a, cmd
}

// submit appends a new entry from the form fields.
func (a *App) submit() {
	entry, err := a.log.Append(garden.EntryInput{
		PlantName: a.fields[fieldPlant].Value(),
		Action:    a.fields[fieldAction].Value(),
		Notes:     a.fields[fieldNotes].Value(),
	})
	if err != nil {
		a.statusMsg = err.Error()
		return
	}

	a.statusMsg = statusForEntry(entry)
	for i := range a.fields {
		a.fields[i].SetValue("")
	}
	a.fields[a.activeIdx].Blur()
	a.activeIdx = fieldPlant
	a.fields[fieldPlant].Focus()
	a.refresh()
}

// statusForEntry describes a committed entry, including the suggested next
// due date when the action is a recurring one.
func statusForEntry(entry model.Entry) string {
	if due, ok := schedule.NextDue(entry.Timestamp, entry.Action); ok {
		return fmt.Sprintf("Logged %s for %s. Next due %s.",
			entry.Action, entry.PlantName, due.Format("2006-01-02"))
	}
	return fmt.Sprintf("Logged %s for %s.", entry.Action, entry.PlantName)
}

// refresh recomputes the derived panes after any append.
func (a *App) refresh() {
	a.recent = a.log.Recent(recentLimit)
	a.upcoming = a.log.Upcoming(time.Now(), horizonDays)
}
