package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salespulse/salespulse/pkg/analyst"
	"github.com/salespulse/salespulse/pkg/sales"
)

// TickCmd returns a Cmd that sends a TickEvent after the given
// duration. This drives the periodic report reload cycle.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// DataFetchCmd returns a Cmd that runs loadFn off the update loop and
// delivers the result as a DataUpdateEvent.
func DataFetchCmd(loadFn func() (*sales.Dataset, error)) tea.Cmd {
	return func() tea.Msg {
		ds, err := loadFn()
		return DataUpdateEvent{
			Dataset:   ds,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}

// AnalyzeCmd returns a Cmd that evaluates a question against the view
// and delivers the result as an AnswerEvent.
func AnalyzeCmd(question string, view sales.View, full *sales.Dataset) tea.Cmd {
	return func() tea.Msg {
		return AnswerEvent{
			Question: question,
			Answer:   analyst.Analyze(question, view, full),
		}
	}
}
