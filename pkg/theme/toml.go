package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Header thTOMLHeader `toml:"header"`
	Card   thTOMLCard   `toml:"card"`
	KPI    thTOMLKPI    `toml:"kpi"`
	Chart  thTOMLChart  `toml:"chart"`
	Chat   thTOMLChat   `toml:"chat"`
	Status thTOMLStatus `toml:"status"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLHeader struct {
	Start  string `toml:"start"`
	End    string `toml:"end"`
	Accent string `toml:"accent"`
	Text   string `toml:"text"`
}

type thTOMLCard struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	BorderHover string `toml:"border_hover"`
	Title       string `toml:"title"`
}

type thTOMLKPI struct {
	Sales    string `toml:"sales"`
	Orders   string `toml:"orders"`
	AvgValue string `toml:"avg_value"`
}

type thTOMLChart struct {
	Line string `toml:"line"`
	Bar  string `toml:"bar"`
	Alt  string `toml:"alt"`
	Grid string `toml:"grid"`
}

type thTOMLChat struct {
	InputBorder string `toml:"input_border"`
	InputFocus  string `toml:"input_focus"`
	Send        string `toml:"send"`
	SendBusy    string `toml:"send_busy"`
	Response    string `toml:"response"`
}

type thTOMLStatus struct {
	OK      string `toml:"ok"`
	Warn    string `toml:"warn"`
	Error   string `toml:"error"`
	Unknown string `toml:"unknown"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		HeaderStart:  tt.Header.Start,
		HeaderEnd:    tt.Header.End,
		HeaderAccent: tt.Header.Accent,
		HeaderText:   tt.Header.Text,

		Border:      tt.Card.Border,
		BorderFocus: tt.Card.BorderFocus,
		BorderHover: tt.Card.BorderHover,
		Title:       tt.Card.Title,

		KPISales:    tt.KPI.Sales,
		KPIOrders:   tt.KPI.Orders,
		KPIAvgValue: tt.KPI.AvgValue,

		ChartLine: tt.Chart.Line,
		ChartBar:  tt.Chart.Bar,
		ChartAlt:  tt.Chart.Alt,
		ChartGrid: tt.Chart.Grid,

		InputBorder: tt.Chat.InputBorder,
		InputFocus:  tt.Chat.InputFocus,
		Send:        tt.Chat.Send,
		SendBusy:    tt.Chat.SendBusy,
		Response:    tt.Chat.Response,

		StatusOK:      tt.Status.OK,
		StatusWarn:    tt.Status.Warn,
		StatusError:   tt.Status.Error,
		StatusUnknown: tt.Status.Unknown,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Header: thTOMLHeader{
			Start:  t.HeaderStart,
			End:    t.HeaderEnd,
			Accent: t.HeaderAccent,
			Text:   t.HeaderText,
		},
		Card: thTOMLCard{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			BorderHover: t.BorderHover,
			Title:       t.Title,
		},
		KPI: thTOMLKPI{
			Sales:    t.KPISales,
			Orders:   t.KPIOrders,
			AvgValue: t.KPIAvgValue,
		},
		Chart: thTOMLChart{
			Line: t.ChartLine,
			Bar:  t.ChartBar,
			Alt:  t.ChartAlt,
			Grid: t.ChartGrid,
		},
		Chat: thTOMLChat{
			InputBorder: t.InputBorder,
			InputFocus:  t.InputFocus,
			Send:        t.Send,
			SendBusy:    t.SendBusy,
			Response:    t.Response,
		},
		Status: thTOMLStatus{
			OK:      t.StatusOK,
			Warn:    t.StatusWarn,
			Error:   t.StatusError,
			Unknown: t.StatusUnknown,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that all required fields are present and that
// every color field is a #RRGGBB hex value.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct {
		field string
		value string
	}{
		{"base.background", t.Background},
		{"base.foreground", t.Foreground},
		{"base.dim", t.Dim},
		{"base.accent", t.Accent},
		{"header.start", t.HeaderStart},
		{"header.end", t.HeaderEnd},
		{"header.accent", t.HeaderAccent},
		{"header.text", t.HeaderText},
		{"card.border", t.Border},
		{"card.border_focus", t.BorderFocus},
		{"card.border_hover", t.BorderHover},
		{"card.title", t.Title},
		{"kpi.sales", t.KPISales},
		{"kpi.orders", t.KPIOrders},
		{"kpi.avg_value", t.KPIAvgValue},
		{"chart.line", t.ChartLine},
		{"chart.bar", t.ChartBar},
		{"chart.alt", t.ChartAlt},
		{"chart.grid", t.ChartGrid},
		{"chat.input_border", t.InputBorder},
		{"chat.input_focus", t.InputFocus},
		{"chat.send", t.Send},
		{"chat.send_busy", t.SendBusy},
		{"chat.response", t.Response},
		{"status.ok", t.StatusOK},
		{"status.warn", t.StatusWarn},
		{"status.error", t.StatusError},
		{"status.unknown", t.StatusUnknown},
	}

	for _, cf := range colorFields {
		if cf.value == "" {
			return fmt.Errorf("theme: missing required field %q", cf.field)
		}
		if !thHexColorRegex.MatchString(cf.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", cf.value, cf.field)
		}
	}

	return nil
}
