// salespulse is a terminal sales dashboard.
//
// It loads an order report CSV (or a bundled demo dataset), then
// renders KPI cards, trend and ranking charts, multi-select filters,
// and a question panel that answers free-text questions about the
// filtered data.
//
// Usage:
//
//	salespulse [flags]
//
// Flags:
//
//	-csv string        Path to the order report CSV (default: config, then demo data)
//	-config string     Path to configuration file (default: ~/.config/salespulse/config.toml)
//	-theme string      Color theme name (dashboard|midnight|ink)
//	-snapshot          Render one frame to stdout and exit (for non-TTY/CI)
//	-term-width int    Terminal width override (0 = auto-detect)
//	-term-height int   Terminal height override (0 = auto-detect)
//	-no-color          Disable color output
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/salespulse/salespulse/pkg/app"
	"github.com/salespulse/salespulse/pkg/config"
	"github.com/salespulse/salespulse/pkg/sales"
	"github.com/salespulse/salespulse/pkg/theme"
	"github.com/salespulse/salespulse/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// Fallback frame size when the terminal cannot be measured.
const (
	defaultWidth  = 120
	defaultHeight = 40
)

func main() {
	var (
		csvPath     = flag.String("csv", "", "Path to the order report CSV")
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Color theme name")
		snapshot    = flag.Bool("snapshot", false, "Render one frame to stdout and exit")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("term-height", 0, "Terminal height override (0 = auto-detect)")
		noColor     = flag.Bool("no-color", false, "Disable color output")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("salespulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration, then let flags win over it.
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *csvPath != "" {
		cfg.Data.CSVPath = *csvPath
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}
	if *verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.General.LogLevel)

	if *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Load the report, or fall back to the demo dataset.
	var (
		ds     *sales.Dataset
		loader func() (*sales.Dataset, error)
	)
	if cfg.Data.CSVPath != "" {
		path, format := cfg.Data.CSVPath, cfg.Data.DateFormat
		loader = func() (*sales.Dataset, error) {
			return sales.LoadFile(path, format)
		}
		ds, err = loader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load report: %v\n", err)
			os.Exit(1)
		}
		slog.Info("loaded order report", "path", path, "orders", len(ds.Orders))
	} else {
		ds = sales.DemoDataset()
		slog.Info("no report configured, using demo data", "orders", len(ds.Orders))
	}

	th := theme.Get(cfg.UI.Theme)
	theme.SetCurrent(cfg.UI.Theme)

	zm := zone.New()
	appCfg := app.Config{
		Refresh:     cfg.Data.Refresh.Duration,
		Loader:      loader,
		Zones:       zm,
		NarrowWidth: cfg.UI.NarrowWidth,
	}
	model := app.NewAppModel(appCfg, th, ds,
		widgets.NewHeader(),
		widgets.NewFilters(zm),
		widgets.NewKPIs(zm),
		widgets.NewTrend(),
		widgets.NewCategories(cfg.UI.TopN),
		widgets.NewCities(cfg.UI.TopN),
		widgets.NewStatus(),
		widgets.NewChat(zm),
	)

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !*snapshot
	if !interactive {
		fmt.Println(renderSnapshot(model, *termWidth, *termHeight))
		return
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		slog.Error("dashboard error", "error", err)
		os.Exit(1)
	}
}

// renderSnapshot produces a single frame at the detected or overridden
// size, for CI and piped output.
func renderSnapshot(model app.AppModel, width, height int) string {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(app.AppModel).View()
}

func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}
