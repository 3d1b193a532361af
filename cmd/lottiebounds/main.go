// Command lottiebounds prints the transform and parent-space bounds of a
// layer, given its transform properties as they appear in a Lottie file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/lottie"
)

// layerFlags holds the parsed command line.
type layerFlags struct {
	anchor   lottie.Vector2D
	position lottie.Vector2D
	scale    lottie.Vector2D
	rotation float64
	skew     *float64
	skewAxis *float64
	bounds   lottie.Rect
}

func main() {
	var (
		anchor   = flag.String("anchor", "0,0", "anchor point x,y")
		position = flag.String("position", "0,0", "position x,y")
		scale    = flag.String("scale", "100,100", "scale x,y in percent")
		rotation = flag.Float64("rotation", 0, "rotation in degrees")
		skew     = flag.String("skew", "", "skew in degrees (optional)")
		skewAxis = flag.String("skew-axis", "", "skew axis in degrees (optional)")
		rect     = flag.String("rect", "0,0,100,100", "layer content rect x,y,width,height")
		lang     = flag.String("lang", "en", "BCP 47 language tag for number formatting")
		verbose  = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		lottie.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	lf, err := parseLayerFlags(*anchor, *position, *scale, *rotation, *skew, *skewAxis, *rect)
	if err != nil {
		log.Fatalf("lottiebounds: %v", err)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("lottiebounds: invalid -lang: %v", err)
	}

	report(os.Stdout, message.NewPrinter(tag), lf)
}

// report writes the layer matrix, its inverse and the transformed bounds.
func report(w io.Writer, p *message.Printer, lf layerFlags) {
	t := lottie.MakeTransform(lf.anchor, lf.position, lf.scale, lf.rotation, lf.skew, lf.skewAxis)

	p.Fprintf(w, "transform:\n")
	printMatrix(w, p, t)

	if inv, err := t.Inverted(); err != nil {
		p.Fprintf(w, "inverse: %v\n", err)
	} else {
		p.Fprintf(w, "inverse:\n")
		printMatrix(w, p, inv)
	}

	b := lf.bounds.ApplyingTransform(t)
	p.Fprintf(w, "bounds: x=%.3f y=%.3f width=%.3f height=%.3f\n", b.X, b.Y, b.Width, b.Height)
	fr := b.Fixed()
	fmt.Fprintf(w, "bounds (26.6): %v-%v\n", fr.Min, fr.Max)
}

func printMatrix(w io.Writer, p *message.Printer, t lottie.Transform) {
	m := t.Mat4()
	for row := 0; row < 4; row++ {
		p.Fprintf(w, "  %12.4f %12.4f %12.4f %12.4f\n", m[row*4], m[row*4+1], m[row*4+2], m[row*4+3])
	}
}

// parseLayerFlags converts the raw flag values.
func parseLayerFlags(anchor, position, scale string, rotation float64, skew, skewAxis, rect string) (layerFlags, error) {
	var lf layerFlags
	var err error
	if lf.anchor, err = parseVector2D("anchor", anchor); err != nil {
		return lf, err
	}
	if lf.position, err = parseVector2D("position", position); err != nil {
		return lf, err
	}
	if lf.scale, err = parseVector2D("scale", scale); err != nil {
		return lf, err
	}
	lf.rotation = rotation
	if lf.skew, err = parseOptional("skew", skew); err != nil {
		return lf, err
	}
	if lf.skewAxis, err = parseOptional("skew-axis", skewAxis); err != nil {
		return lf, err
	}

	vals, err := parseFloats("rect", rect, 4)
	if err != nil {
		return lf, err
	}
	lf.bounds = lottie.NewRect(vals[0], vals[1], vals[2], vals[3])
	return lf, nil
}

func parseVector2D(name, s string) (lottie.Vector2D, error) {
	vals, err := parseFloats(name, s, 2)
	if err != nil {
		return lottie.Vector2D{}, err
	}
	return lottie.V2(vals[0], vals[1]), nil
}

func parseOptional(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return &f, nil
}

func parseFloats(name, s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("-%s: want %d comma separated numbers, got %q", name, n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", name, err)
		}
		out[i] = f
	}
	return out, nil
}
