package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/theme"
)

func testDataset() *sales.Dataset {
	day := time.Date(2022, 4, 30, 0, 0, 0, 0, time.UTC)
	ds := &sales.Dataset{Orders: []sales.Order{
		{ID: "1", Date: day, Month: "2022-04", Category: "Kurta", State: "Maharashtra", City: "Mumbai", Status: "Shipped", Amount: 376},
		{ID: "2", Date: day, Month: "2022-04", Category: "Set", State: "Karnataka", City: "Bengaluru", Status: "Pending", Amount: 1049},
	}}
	return ds
}

// helper to create a model with placeholder widgets for testing.
func newTestModel() AppModel {
	return NewAppModel(DefaultConfig(), theme.Get("dashboard"), testDataset(),
		NewPlaceholder("header", "Sales Dashboard"),
		NewPlaceholder("filters", "Filters"),
		NewPlaceholder("kpi", "KPIs"),
		NewPlaceholder("chat", "Ask"),
	)
}

// helper to send a message through Update and return the updated model.
func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestInitialFocusSkipsHeader(t *testing.T) {
	m := newTestModel()
	if m.FocusedWidget() != "filters" {
		t.Errorf("initial focus = %q, want filters", m.FocusedWidget())
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 {
		t.Errorf("expected width 120, got %d", m.Width())
	}
	if m.Height() != 40 {
		t.Errorf("expected height 40, got %d", m.Height())
	}
	if !m.LayoutDirty() {
		t.Error("expected layoutDirty=true after WindowSizeMsg")
	}
}

func TestWindowSizeMsgBroadcastsCompiledSheet(t *testing.T) {
	m := newTestModel()
	w := m.widgets["kpi"].(*PlaceholderWidget)

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	ev, ok := w.LastEvent.(StyleUpdateEvent)
	if !ok {
		t.Fatalf("last event = %T, want StyleUpdateEvent", w.LastEvent)
	}
	if !ev.Sheet.Narrow || !ev.Plan.Narrow {
		t.Error("80 columns should broadcast the narrow arrangement")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 160, Height: 48})
	if ev := w.LastEvent.(StyleUpdateEvent); ev.Sheet.Narrow {
		t.Error("160 columns should broadcast the wide arrangement")
	}
	_ = m
}

func TestTabCyclesFocusSkippingHeader(t *testing.T) {
	m := newTestModel()
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m, _ = update(m, tab)
	if m.FocusedWidget() != "kpi" {
		t.Errorf("after tab focus = %q, want kpi", m.FocusedWidget())
	}
	m, _ = update(m, tab)
	if m.FocusedWidget() != "chat" {
		t.Errorf("after two tabs focus = %q, want chat", m.FocusedWidget())
	}
	// Wraps past the header back to the first focusable widget.
	m, _ = update(m, tab)
	if m.FocusedWidget() != "filters" {
		t.Errorf("after wrap focus = %q, want filters", m.FocusedWidget())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedWidget() != "chat" {
		t.Errorf("after shift+tab focus = %q, want chat", m.FocusedWidget())
	}
}

func TestFilterChangedRebuildsView(t *testing.T) {
	m := newTestModel()
	w := m.widgets["kpi"].(*PlaceholderWidget)

	m, _ = update(m, FilterChangedEvent{Filter: sales.Filter{Categories: []string{"Kurta"}}})
	if got := m.CurrentView().OrderCount(); got != 1 {
		t.Errorf("filtered view has %d orders, want 1", got)
	}
	ev, ok := w.LastEvent.(ViewUpdateEvent)
	if !ok {
		t.Fatalf("last event = %T, want ViewUpdateEvent", w.LastEvent)
	}
	if ev.View.OrderCount() != 1 {
		t.Errorf("broadcast view has %d orders, want 1", ev.View.OrderCount())
	}
}

func TestDataUpdateErrorKeepsDataset(t *testing.T) {
	m := newTestModel()
	before := m.CurrentView().OrderCount()

	m, _ = update(m, DataUpdateEvent{Err: errors.New("file vanished")})
	if got := m.CurrentView().OrderCount(); got != before {
		t.Errorf("failed reload changed view: %d -> %d", before, got)
	}
}

func TestDataUpdateReplacesDataset(t *testing.T) {
	m := newTestModel()
	ds := testDataset()
	ds.Orders = ds.Orders[:1]

	m, _ = update(m, DataUpdateEvent{Dataset: ds})
	if got := m.CurrentView().OrderCount(); got != 1 {
		t.Errorf("view has %d orders after reload, want 1", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel()
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

	_, cmd := update(m, q)
	if cmd == nil {
		t.Fatal("q should quit when chat is not focused")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command did not produce QuitMsg")
	}

	m.FocusWidget("chat")
	_, cmd = update(m, q)
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q should type into the focused chat, not quit")
		}
	}
}

func TestAnalyzeCmdDeliversAnswer(t *testing.T) {
	ds := testDataset()
	view := ds.Apply(sales.Filter{})

	msg := AnalyzeCmd("total sales", view, ds)()
	ans, ok := msg.(AnswerEvent)
	if !ok {
		t.Fatalf("AnalyzeCmd produced %T, want AnswerEvent", msg)
	}
	if !strings.Contains(ans.Answer, "₹1,425.00") {
		t.Errorf("answer = %q", ans.Answer)
	}
}

func TestDataFetchCmdReportsError(t *testing.T) {
	msg := DataFetchCmd(func() (*sales.Dataset, error) {
		return nil, errors.New("no such file")
	})()
	ev, ok := msg.(DataUpdateEvent)
	if !ok {
		t.Fatalf("DataFetchCmd produced %T, want DataUpdateEvent", msg)
	}
	if ev.Err == nil {
		t.Error("expected Err to be set")
	}
}

func TestInitStartsTickerOnlyWithLoader(t *testing.T) {
	m := newTestModel()
	if m.Init() != nil {
		t.Error("no loader configured, Init should not tick")
	}

	cfg := DefaultConfig()
	cfg.Loader = func() (*sales.Dataset, error) { return testDataset(), nil }
	withLoader := NewAppModel(cfg, theme.Get("dashboard"), testDataset(),
		NewPlaceholder("filters", "Filters"))
	if withLoader.Init() == nil {
		t.Error("loader configured, Init should return a tick command")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newTestModel()
	if !strings.Contains(m.View(), "measuring") {
		t.Error("view before WindowSizeMsg should show the measuring notice")
	}
}

func TestViewRendersAndIsStable(t *testing.T) {
	m := NewAppModel(DefaultConfig(), theme.Get("dashboard"), testDataset(),
		NewPlaceholder("header", "Sales Dashboard"),
		NewPlaceholder("filters", "Filters"),
		NewPlaceholder("kpi", "KPIs"),
		NewPlaceholder("trend", "Trend"),
		NewPlaceholder("categories", "Categories"),
		NewPlaceholder("cities", "Cities"),
		NewPlaceholder("status", "Status"),
		NewPlaceholder("chat", "Ask"),
	)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	first := m.View()
	for _, want := range []string{"Sales Dashboard", "Filters", "Trend", "Ask"} {
		if !strings.Contains(first, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if second := m.View(); second != first {
		t.Error("rendering twice at the same size should be byte-identical")
	}
}
