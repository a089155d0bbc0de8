package theme

import (
	"regexp"
	"sort"
	"strings"
	"testing"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// --- Get / SetCurrent / Names ---

func TestGetDashboard(t *testing.T) {
	th := Get("dashboard")
	if th.Name != "dashboard" {
		t.Errorf("Get(\"dashboard\").Name = %q, want %q", th.Name, "dashboard")
	}
	if th.Accent != "#667eea" {
		t.Errorf("Get(\"dashboard\").Accent = %q, want %q", th.Accent, "#667eea")
	}
	if th.HeaderStart != "#667eea" || th.HeaderEnd != "#764ba2" {
		t.Errorf("dashboard header gradient = %q..%q, want #667eea..#764ba2",
			th.HeaderStart, th.HeaderEnd)
	}
}

func TestGetMidnight(t *testing.T) {
	th := Get("midnight")
	if th.Name != "midnight" {
		t.Errorf("Get(\"midnight\").Name = %q, want %q", th.Name, "midnight")
	}
	if th.Background != "#1a202c" {
		t.Errorf("Get(\"midnight\").Background = %q, want %q", th.Background, "#1a202c")
	}
}

func TestGetUnknownFallsBackToDashboard(t *testing.T) {
	th := Get("unknown-theme-xyz")
	def := Get("dashboard")
	if th.Name != def.Name {
		t.Errorf("Get(\"unknown\") = %q, want %q (dashboard)", th.Name, def.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 3 {
		t.Fatalf("Names() returned %d themes, want 3", len(names))
	}
	expected := []string{"dashboard", "ink", "midnight"}
	sort.Strings(expected)
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestSetCurrent(t *testing.T) {
	defer SetCurrent("dashboard")

	SetCurrent("midnight")
	if Current.Name != "midnight" {
		t.Errorf("Current.Name = %q after SetCurrent(\"midnight\")", Current.Name)
	}
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		if err := thValidateTheme(th); err != nil {
			t.Errorf("builtin theme %q fails validation: %v", name, err)
		}
	}
}

// --- KPI accents (one distinct color per metric card) ---

func TestAccentPerMetric(t *testing.T) {
	th := Get("dashboard")

	cases := []struct {
		metric string
		want   string
	}{
		{"sales", "#667eea"},
		{"orders", "#48bb78"},
		{"avg-value", "#f6ad55"},
	}
	for _, tc := range cases {
		if got := Accent(th, tc.metric); got != tc.want {
			t.Errorf("Accent(%q) = %q, want %q", tc.metric, got, tc.want)
		}
	}

	// The three accents must be distinct from one another.
	seen := map[string]string{}
	for _, tc := range cases {
		c := Accent(th, tc.metric)
		if prev, dup := seen[c]; dup {
			t.Errorf("metrics %q and %q share accent %q", prev, tc.metric, c)
		}
		seen[c] = tc.metric
	}
}

func TestAccentUnknownMetricFallsBack(t *testing.T) {
	th := Get("dashboard")
	if got := Accent(th, "conversion"); got != th.Border {
		t.Errorf("Accent(unknown) = %q, want card border %q", got, th.Border)
	}
}

// --- Interaction state resolution ---

func TestBorderColorStates(t *testing.T) {
	th := Get("dashboard")

	if got := BorderColor(th, false, false); got != th.Border {
		t.Errorf("idle border = %q, want %q", got, th.Border)
	}
	if got := BorderColor(th, true, false); got != th.BorderFocus {
		t.Errorf("focused border = %q, want %q", got, th.BorderFocus)
	}
	if got := BorderColor(th, false, true); got != th.BorderHover {
		t.Errorf("hovered border = %q, want %q", got, th.BorderHover)
	}
	// Hover beats focus.
	if got := BorderColor(th, true, true); got != th.BorderHover {
		t.Errorf("hover+focus border = %q, want hover %q", got, th.BorderHover)
	}
}

func TestStatusColor(t *testing.T) {
	th := Get("dashboard")

	cases := []struct {
		status string
		want   string
	}{
		{"Shipped - Delivered to Buyer", th.StatusOK},
		{"Shipped", th.StatusOK},
		{"Pending", th.StatusWarn},
		{"Cancelled", th.StatusError},
		{"Shipped - Returned to Seller", th.StatusOK}, // "shipped" checked before "return"
		{"Lost in Transit", th.StatusUnknown},
	}
	for _, tc := range cases {
		if got := StatusColor(th, tc.status); got != tc.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

// --- Gradient ---

func TestGradientEndpoints(t *testing.T) {
	ramp := Gradient("#667eea", "#764ba2", 10)
	if len(ramp) != 10 {
		t.Fatalf("Gradient returned %d colors, want 10", len(ramp))
	}
	if !strings.EqualFold(ramp[0], "#667eea") {
		t.Errorf("ramp[0] = %q, want #667eea", ramp[0])
	}
	if !strings.EqualFold(ramp[len(ramp)-1], "#764ba2") {
		t.Errorf("ramp[last] = %q, want #764ba2", ramp[len(ramp)-1])
	}
	for i, c := range ramp {
		if !thTestHexPattern.MatchString(c) {
			t.Errorf("ramp[%d] = %q is not a hex color", i, c)
		}
	}
}

func TestGradientDegenerate(t *testing.T) {
	if got := Gradient("#667eea", "#764ba2", 0); got != nil {
		t.Errorf("Gradient(steps=0) = %v, want nil", got)
	}
	one := Gradient("#667eea", "#764ba2", 1)
	if len(one) != 1 || !strings.EqualFold(one[0], "#667eea") {
		t.Errorf("Gradient(steps=1) = %v, want single start color", one)
	}
	bad := Gradient("nope", "#764ba2", 3)
	for _, c := range bad {
		if c != "nope" {
			t.Errorf("invalid start should yield flat ramp, got %v", bad)
			break
		}
	}
}

// --- TOML round trip ---

func TestTOMLRoundTrip(t *testing.T) {
	orig := Get("dashboard")
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	back, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if back != orig {
		t.Errorf("round-tripped theme differs:\n got %+v\nwant %+v", back, orig)
	}
}

func TestLoadFromTOMLMissingField(t *testing.T) {
	_, err := LoadFromTOML([]byte(`name = "partial"` + "\n" + `[base]` + "\n" + `background = "#ffffff"`))
	if err == nil {
		t.Fatal("expected error for theme with missing fields")
	}
}

func TestLoadFromTOMLInvalidHex(t *testing.T) {
	th := Get("dashboard")
	th.Name = "broken"
	th.KPISales = "blue"
	data, err := SaveToTOML(th)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	if _, err := LoadFromTOML(data); err == nil {
		t.Fatal("expected error for non-hex color value")
	}
}
