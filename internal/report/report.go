// Package report renders a summary of a point and the results of the point
// operations applied to it, one aligned row per operation.
package report

import (
	"fmt"
	"io"

	"github.com/hnimtadd/svgpoint/logger"
	"github.com/hnimtadd/svgpoint/point"
	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Row struct {
	Label string
	Value string
}

type Options struct {
	// Rotate is the rotation, in degrees, shown in the rotate row.
	Rotate float64
	// Length is the target length of the normalize row.
	Length float64
	// Lang selects number formatting for scalar rows. Defaults to English.
	Lang   language.Tag
	Logger logger.Logger
}

// Labels are padded by display width, not bytes; force narrow ambiguous
// runes so the layout does not depend on the locale.
var width = func() *dw.Condition {
	c := dw.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Build evaluates the operations on p. p itself is not modified.
func Build(p *point.Point, opts Options) ([]Row, error) {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	lang := opts.Lang
	if lang == language.Und {
		lang = language.English
	}
	printer := message.NewPrinter(lang)

	normalized, err := p.NormalizeTo(opts.Length)
	if err != nil {
		return nil, fmt.Errorf("normalize %v to %v: %w", p, opts.Length, err)
	}
	rotated, err := p.Rotate(opts.Rotate)
	if err != nil {
		return nil, fmt.Errorf("rotate %v by %v: %w", p, opts.Rotate, err)
	}

	arr := p.ToArray()
	rows := []Row{
		{"point", p.String()},
		{"array", printer.Sprintf("[%v, %v]", arr[0], arr[1])},
		{"length", printer.Sprintf("%.4f", p.Length())},
		{"angle θ", printer.Sprintf("%.4f°", p.Angle())},
		{"negate", p.Negate().String()},
		{"normalize", normalized.String()},
		{"rotate", rotated.String()},
		{"zero", fmt.Sprint(p.IsZero())},
		{"hash", fmt.Sprintf("%016x", p.Hash())},
	}
	for _, row := range rows {
		log.Debug("report row", "label", row.Label, "value", row.Value)
	}
	return rows, nil
}

// Write prints rows with their values aligned after the widest label.
func Write(w io.Writer, rows []Row) error {
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, width.StringWidth(row.Label))
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s  %s\n", width.FillRight(row.Label, labelWidth), row.Value); err != nil {
			return err
		}
	}
	return nil
}
