package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/components"
	"github.com/salespulse/salespulse/pkg/styles"
)

// ChatWidget is the question panel: a text input, a send control, and
// the response area. Submitting emits an AskEvent; the send control
// dims until the answer arrives.
type ChatWidget struct {
	sheet    styles.Sheet
	zm       *zone.Manager
	input    textinput.Model
	response string
	busy     bool
	focused  bool
}

// NewChat creates the question panel. The zone manager registers the
// send control's click target.
func NewChat(zm *zone.Manager) *ChatWidget {
	ti := textinput.New()
	ti.Placeholder = "e.g. 'sales in Mumbai' or 'details for order 405-118'"
	ti.Prompt = "> "
	ti.CharLimit = 200
	return &ChatWidget{
		zm:       zm,
		input:    ti,
		response: "Ask a question about the data shown above.",
	}
}

// ID returns the unique identifier for this widget.
func (w *ChatWidget) ID() string { return "chat" }

// Title returns the display name for this widget.
func (w *ChatWidget) Title() string { return "Ask About Your Data" }

// MinSize returns the minimum width and height this widget requires.
func (w *ChatWidget) MinSize() (int, int) { return 40, 9 }

// Update tracks styles, focus, question lifecycle, and send clicks.
func (w *ChatWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.StyleUpdateEvent:
		w.sheet = msg.Sheet
		w.input.TextStyle = msg.Sheet.SelectValue
		w.input.PlaceholderStyle = msg.Sheet.SelectPlaceholder
		w.input.PromptStyle = msg.Sheet.SelectChosen

	case app.WidgetFocusEvent:
		w.focused = msg.WidgetID == w.ID()
		if w.focused {
			return w.input.Focus()
		}
		w.input.Blur()

	case app.AskEvent:
		w.busy = true

	case app.AnswerEvent:
		w.busy = false
		w.response = msg.Answer

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			w.zm.Get("chat:send").InBounds(msg) {
			return w.chSubmit()
		}
	}
	return nil
}

// HandleKey submits on enter and forwards everything else to the text
// input.
func (w *ChatWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if key.String() == "enter" {
		return w.chSubmit()
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

// View renders the panel: input row with the send control, then the
// response area.
func (w *ChatWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := w.sheet

	frame := s.ChatPanel
	if w.focused {
		frame = s.FocusedCard()
	}
	inner := innerWidth(frame, width)

	send := s.Send.Render("Ask")
	if w.busy {
		send = s.SendBusy.Render("...")
	}
	send = w.zm.Mark("chat:send", send)

	inputStyle := s.Input
	if w.focused {
		inputStyle = s.InputFocused
	}
	inputWidth := inner - components.VisibleWidth(send) - 1
	if inputWidth < 10 {
		inputWidth = inner
		send = ""
	}
	w.input.Width = inputWidth - 6 // border, padding, prompt
	inputBox := inputStyle.Width(inputWidth - 2).Render(w.input.View())

	row := lipgloss.JoinHorizontal(lipgloss.Center, inputBox, " ", send)

	respRows := height - 2 - lipgloss.Height(row) - 1
	if respRows < 1 {
		respRows = 1
	}
	resp := w.chResponse(inner, respRows)

	body := lipgloss.JoinVertical(lipgloss.Left,
		grTitle(s, false).Render(components.Truncate(w.Title(), inner, "…")),
		row,
		resp)

	return renderCard(frame, body, width, height)
}

// chResponse wraps the answer into the response area.
func (w *ChatWidget) chResponse(width, height int) string {
	if width <= 2 {
		return ""
	}
	var lines []string
	for _, para := range strings.Split(w.response, "\n") {
		lines = append(lines, components.Wrap(para, width-2)...)
	}
	for i, line := range lines {
		lines[i] = w.sheet.Response.Render(line)
	}
	return fitLines(lines, width, height)
}

// chSubmit emits the typed question, if any, and clears the input.
func (w *ChatWidget) chSubmit() tea.Cmd {
	if w.busy {
		return nil
	}
	q := strings.TrimSpace(w.input.Value())
	if q == "" {
		return nil
	}
	w.input.SetValue("")
	return func() tea.Msg {
		return app.AskEvent{Question: q}
	}
}

// compile-time check that ChatWidget implements app.Widget.
var _ app.Widget = (*ChatWidget)(nil)
