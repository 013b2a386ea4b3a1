// Command pointinfo prints the result of the point operations for a single
// point.
//
//	pointinfo [flags] [x y]
//
// With no coordinates the origin is used.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hnimtadd/svgpoint/internal/report"
	"github.com/hnimtadd/svgpoint/logger"
	"github.com/hnimtadd/svgpoint/point"
	"golang.org/x/text/language"
)

func main() {
	var (
		levelName = flag.String("log-level", "info", "log level: debug, info, warn or error")
		typeName  = flag.String("log-format", "text", "log format: text or json")
		langName  = flag.String("lang", "en", "BCP 47 language used to format numbers")
		rotate    = flag.Float64("rotate", 90, "rotation in degrees for the rotate row")
		length    = flag.Float64("length", 1, "target length for the normalize row")
	)
	flag.Parse()

	level, err := logger.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	typ, err := logger.ParseType(*typeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.New(logger.Options{Buffer: os.Stderr, Level: level, Type: typ})

	lang, err := language.Parse(*langName)
	if err != nil {
		log.Error("invalid language", "lang", *langName, "error", err)
		os.Exit(2)
	}

	p, err := parsePoint(flag.Args())
	if err != nil {
		log.Error("invalid point", "args", flag.Args(), "error", err)
		os.Exit(1)
	}
	log.Debug("evaluating", "point", p.String(), "rotate", *rotate, "length", *length)

	rows, err := report.Build(p, report.Options{
		Rotate: *rotate,
		Length: *length,
		Lang:   lang,
		Logger: log,
	})
	if err != nil {
		log.Error("evaluate point", "error", err)
		os.Exit(1)
	}
	if err := report.Write(os.Stdout, rows); err != nil {
		log.Error("write report", "error", err)
		os.Exit(1)
	}
}

func parsePoint(args []string) (*point.Point, error) {
	switch len(args) {
	case 0:
		return point.From(point.Operand{})
	case 2:
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parse x: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse y: %w", err)
		}
		return point.New(x, y)
	default:
		return nil, fmt.Errorf("expected 0 or 2 coordinates, got %d", len(args))
	}
}
