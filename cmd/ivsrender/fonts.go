package main

import (
	"fmt"
	"log/slog"

	"github.com/go-text/typesetting/fontscan"
)

// scanLogger routes fontscan warnings to slog.
type scanLogger struct{ l *slog.Logger }

func (s scanLogger) Printf(format string, args ...any) {
	s.l.Warn("fontscan: " + fmt.Sprintf(format, args...))
}

// findFamily looks up an installed font by family name.
func findFamily(logger *slog.Logger, family string) (fontscan.Location, error) {
	fm := fontscan.NewFontMap(scanLogger{logger})
	if err := fm.UseSystemFonts(""); err != nil {
		return fontscan.Location{}, fmt.Errorf("scanning system fonts: %w", err)
	}
	loc, ok := fm.FindSystemFont(family)
	if !ok {
		return fontscan.Location{}, fmt.Errorf("font family %q is not installed", family)
	}
	logger.Debug("font family found", slog.String("family", family), slog.String("file", loc.File))
	return loc, nil
}
