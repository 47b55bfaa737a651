package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/dodopayments-go/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level  log.Level
	key    string
	marker string
	color  lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "error", "ERR", lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF6B6B"}},
	{log.WarnLevel, "warn", "WRN", lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#EE6FF8"}},
	{log.InfoLevel, "info", "INF", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	{log.DebugLevel, "debug", "DBG", lipgloss.AdaptiveColor{Light: "#5E35B1", Dark: "#7E57C2"}},
}

// setupLogger builds a charmbracelet logger from cfg and installs it as the
// slog default. Logs go to w so command output on stdout stays parseable.
func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	styles := log.DefaultStyles()
	for _, s := range levelStyles {
		styles.Levels[s.level] = lipgloss.NewStyle().
			SetString(s.marker).
			Bold(true).
			Padding(0, 1).
			Foreground(s.color)
		styles.Keys[s.key] = lipgloss.NewStyle().Foreground(s.color)
		styles.Values[s.key] = lipgloss.NewStyle().Bold(true)
	}
	muted := lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"}
	for _, key := range []string{"prefix", "caller", "time", "model", "path"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(muted)
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < int(log.InfoLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
