package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDashboardTheme(),
		thMidnightTheme(),
		thInkTheme(),
	} {
		Register(t)
	}
}

// thDashboardTheme returns the default light theme. Its palette is the
// dashboard's house style: an indigo-to-violet header gradient with
// indigo, green, and orange metric accents on cool grays.
func thDashboardTheme() Theme {
	return Theme{
		Name:       "dashboard",
		Background: "#f7fafc",
		Foreground: "#2d3748",
		Dim:        "#718096",
		Accent:     "#667eea",

		HeaderStart:  "#667eea",
		HeaderEnd:    "#764ba2",
		HeaderAccent: "#5a67d8",
		HeaderText:   "#ffffff",

		Border:      "#cbd5e0",
		BorderFocus: "#667eea",
		BorderHover: "#764ba2",
		Title:       "#2d3748",

		KPISales:    "#667eea",
		KPIOrders:   "#48bb78",
		KPIAvgValue: "#f6ad55",

		ChartLine: "#667eea",
		ChartBar:  "#764ba2",
		ChartAlt:  "#48bb78",
		ChartGrid: "#a0aec0",

		InputBorder: "#cbd5e0",
		InputFocus:  "#667eea",
		Send:        "#667eea",
		SendBusy:    "#a3bffa",
		Response:    "#4a5568",

		StatusOK:      "#48bb78",
		StatusWarn:    "#f6ad55",
		StatusError:   "#fc8181",
		StatusUnknown: "#a0aec0",
	}
}

// thMidnightTheme returns the dark variant with the same accent family.
func thMidnightTheme() Theme {
	return Theme{
		Name:       "midnight",
		Background: "#1a202c",
		Foreground: "#e2e8f0",
		Dim:        "#718096",
		Accent:     "#7f9cf5",

		HeaderStart:  "#434190",
		HeaderEnd:    "#553c9a",
		HeaderAccent: "#7f9cf5",
		HeaderText:   "#edf2f7",

		Border:      "#4a5568",
		BorderFocus: "#7f9cf5",
		BorderHover: "#b794f4",
		Title:       "#e2e8f0",

		KPISales:    "#7f9cf5",
		KPIOrders:   "#68d391",
		KPIAvgValue: "#fbd38d",

		ChartLine: "#7f9cf5",
		ChartBar:  "#b794f4",
		ChartAlt:  "#68d391",
		ChartGrid: "#4a5568",

		InputBorder: "#4a5568",
		InputFocus:  "#7f9cf5",
		Send:        "#7f9cf5",
		SendBusy:    "#4c51bf",
		Response:    "#cbd5e0",

		StatusOK:      "#68d391",
		StatusWarn:    "#fbd38d",
		StatusError:   "#fc8181",
		StatusUnknown: "#718096",
	}
}

// thInkTheme returns a low-chroma theme for terminals where saturated
// accents read poorly.
func thInkTheme() Theme {
	return Theme{
		Name:       "ink",
		Background: "#111111",
		Foreground: "#d6d6d6",
		Dim:        "#6b6b6b",
		Accent:     "#9e9eff",

		HeaderStart:  "#3a3a55",
		HeaderEnd:    "#4d3a5c",
		HeaderAccent: "#9e9eff",
		HeaderText:   "#f0f0f0",

		Border:      "#3e3e3e",
		BorderFocus: "#9e9eff",
		BorderHover: "#c2a8e0",
		Title:       "#d6d6d6",

		KPISales:    "#9e9eff",
		KPIOrders:   "#8fcf9f",
		KPIAvgValue: "#e0bd8a",

		ChartLine: "#9e9eff",
		ChartBar:  "#b0a0c8",
		ChartAlt:  "#8fcf9f",
		ChartGrid: "#3e3e3e",

		InputBorder: "#3e3e3e",
		InputFocus:  "#9e9eff",
		Send:        "#9e9eff",
		SendBusy:    "#55557a",
		Response:    "#bdbdbd",

		StatusOK:      "#8fcf9f",
		StatusWarn:    "#e0bd8a",
		StatusError:   "#e08a8a",
		StatusUnknown: "#6b6b6b",
	}
}
