package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the form pane next to the recent/upcoming panes.
func (a App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	paneW := a.width/2 - 4

	form := a.renderForm()
	formPane := paneStyle.Width(paneW).Render(titleStyle.Render(" Log a care action ") + "\n" + form)

	right := a.renderRecent() + "\n\n" + a.renderUpcoming()
	rightPane := paneStyle.Width(paneW).Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, formPane, rightPane)

	status := ""
	if a.statusMsg != "" {
		status = statusStyle.Render(a.statusMsg)
	}
	help := helpStyle.Render("tab: next field • enter: log • esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, status, help)
}

func (a App) renderForm() string {
	var b strings.Builder
	labels := [fieldCount]string{"Plant", "Action", "Notes"}
	for i, f := range a.fields {
		b.WriteString(labelStyle.Render(labels[i]) + "\n")
		b.WriteString(f.View() + "\n")
	}
	return b.String()
}

func (a App) renderRecent() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Recent entries ") + "\n")
	if len(a.recent) == 0 {
		b.WriteString(dimStyle.Render("no log entries yet"))
		return b.String()
	}
	for _, e := range a.recent {
		line := fmt.Sprintf("%s  %s • %s", e.Timestamp.Format("01-02 15:04"), e.PlantName, e.Action)
		b.WriteString(line + "\n")
		if e.Notes != "" {
			b.WriteString(dimStyle.Render("  "+e.Notes) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderUpcoming() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" Upcoming (next %d days) ", horizonDays)) + "\n")
	if len(a.upcoming) == 0 {
		b.WriteString(dimStyle.Render("nothing due"))
		return b.String()
	}
	for _, task := range a.upcoming {
		b.WriteString(fmt.Sprintf("%s  %s • %s\n", task.DueAt.Format("01-02"), task.PlantName, task.Action))
	}
	return strings.TrimRight(b.String(), "\n")
}
