// Command ivsrender renders Japanese text with Ideographic Variation
// Sequences to a PNG file.
//
// Example:
//
//	ivsrender -font HaranoAjiGothic-Medium.otf -registry IVD_Sequences.txt \
//	    -text "テ鯛鯛󠄀炱" -width 150 -height 20 -weight 5 -stroke '#ff0000'
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/ivsrender"
	"github.com/gogpu/ivsrender/font"
	"github.com/gogpu/ivsrender/ivd"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "font file (OpenType, TrueType or collection)")
		family     = flag.String("family", "", "installed font family, used when -font is empty")
		index      = flag.Int("index", 0, "font index within a collection")
		registry   = flag.String("registry", "", "IVD registry file (IVD_Sequences.txt), Adobe-Japan1 entries are used")
		text       = flag.String("text", "テ鯛鯛\U000E0100炱鯛\U000E0101体\U000E0102辻辻\U000E0100辻\U000E0101", "text to render")
		output     = flag.String("output", "text.png", "output PNG file")
		width      = flag.Int("width", 150, "target field width")
		height     = flag.Int("height", 20, "target field height")
		weight     = flag.Float64("weight", 1.0, "outline width in font units")
		fill       = flag.String("fill", "#000000", "fill color")
		strokeCol  = flag.String("stroke", "#000000", "outline color")
		vertical   = flag.Bool("vertical", false, "vertical writing")
		margin     = flag.Int("margin", 50, "glyph margin in font units")
		variations = flag.Bool("font-variations", false, "also use the font's own variation sequences")
		frames     = flag.String("frames", "", "directory to write one PNG per glyph")
		check      = flag.Bool("check", false, "only report characters without a glyph")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ivsrender.SetLogger(logger)

	if err := run(logger, config{
		fontPath:   *fontPath,
		family:     *family,
		index:      *index,
		registry:   *registry,
		text:       *text,
		output:     *output,
		field:      image.Pt(*width, *height),
		weight:     *weight,
		fill:       *fill,
		stroke:     *strokeCol,
		vertical:   *vertical,
		margin:     *margin,
		variations: *variations,
		frames:     *frames,
		check:      *check,
	}); err != nil {
		logger.Error("ivsrender failed", slog.Any("error", err))
		os.Exit(1)
	}
}

type config struct {
	fontPath, family string
	index            int
	registry         string
	text             string
	output           string
	field            image.Point
	weight           float64
	fill, stroke     string
	vertical         bool
	margin           int
	variations       bool
	frames           string
	check            bool
}

func run(logger *slog.Logger, cfg config) error {
	path := cfg.fontPath
	index := cfg.index
	if path == "" {
		if cfg.family == "" {
			return errors.New("one of -font or -family is required")
		}
		loc, err := findFamily(logger, cfg.family)
		if err != nil {
			return err
		}
		path, index = loc.File, int(loc.Index)
	}
	src, err := font.LoadIndex(path, index)
	if err != nil {
		return err
	}
	logger.Info("font loaded",
		slog.String("path", path),
		slog.Int("glyphs", src.NumGlyphs()),
		slog.Bool("cid_keyed", src.CIDKeyed()))

	var table *ivd.Table
	if cfg.registry != "" {
		if table, err = ivd.Load(cfg.registry, ivd.AdobeJapan1); err != nil {
			return err
		}
		logger.Info("registry loaded",
			slog.String("collection", table.Collection()),
			slog.Int("sequences", table.Len()),
			slog.Int("skipped_lines", table.Skipped()))
	}

	fillColor, err := parseColor(cfg.fill)
	if err != nil {
		return fmt.Errorf("-fill: %w", err)
	}
	strokeColor, err := parseColor(cfg.stroke)
	if err != nil {
		return fmt.Errorf("-stroke: %w", err)
	}

	r := ivsrender.New(src, table,
		ivsrender.WithWeight(cfg.weight),
		ivsrender.WithFillColor(fillColor),
		ivsrender.WithStrokeColor(strokeColor),
		ivsrender.WithVertical(cfg.vertical),
		ivsrender.WithMargin(cfg.margin),
		ivsrender.WithFontVariations(cfg.variations),
	)

	if cfg.check {
		missing := r.Unrenderable(cfg.text)
		for _, e := range missing {
			fmt.Printf("%d\tU+%04X\t%s\n", e.Index, e.Rune, runenames.Name(e.Rune))
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d characters without a glyph", len(missing))
		}
		return nil
	}

	if cfg.frames != "" {
		if err := writeFrames(r, cfg.text, cfg.frames); err != nil {
			return err
		}
	}

	img, err := r.Render(cfg.text, cfg.field)
	if err != nil {
		return err
	}
	if err := writePNG(cfg.output, img); err != nil {
		return err
	}
	logger.Info("image saved", slog.String("path", cfg.output),
		slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
	return nil
}

func writeFrames(r *ivsrender.Renderer, text, dir string) error {
	frames, err := r.Frames(text)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, f := range frames {
		name := filepath.Join(dir, fmt.Sprintf("%03d_%s.png", i, f.Glyph.Name))
		if err := writePNG(name, f.Image); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
