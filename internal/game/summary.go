package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Summary is printed to the terminal when the window closes.
type Summary struct {
	Games     int
	BestScore int
	LastScore int
	Length    int
	Played    time.Duration
}

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Lines returns the summary as label/value rows.
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("Games played: %d", s.Games),
		fmt.Sprintf("Best score:   %d", s.BestScore),
		fmt.Sprintf("Last score:   %d", s.LastScore),
		fmt.Sprintf("Last length:  %d", s.Length),
		fmt.Sprintf("Time played:  %s", s.Played),
	}
}

// Render draws the summary as a bordered box.
func (s Summary) Render() string {
	var b strings.Builder
	b.WriteString(summaryTitle.Render("Snake"))
	for _, line := range s.Lines() {
		b.WriteString("\n")
		b.WriteString(summaryLabel.Render(line))
	}
	return summaryBox.Render(b.String())
}
