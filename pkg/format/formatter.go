package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/prettify/pkg/consts"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentUnit is the string added once per nesting level
		IndentUnit string
		// MaxDepth is the deepest level the indent table holds
		MaxDepth int
		// Overflow decides what happens when nesting goes deeper than MaxDepth
		Overflow OverflowPolicy
	}

	// Formatter renders XML, JSON, CSS and SQL text with consistent indentation.
	//
	// A Formatter holds only immutable tables built by New, so a single instance can
	// be shared by any number of goroutines.
	Formatter struct {
		options  FormatterOptions
		table    *IndentTable
		sqlRules []boundRule
	}
)

// Defaults are the standard formatting options: two spaces per level, 100 levels,
// clamping anything deeper.
var Defaults = FormatterOptions{
	IndentUnit: consts.DefaultIndentUnit,
	MaxDepth:   consts.DefaultMaxDepth,
	Overflow:   ClampDepth,
}

// New creates a new Formatter with the specified options. Zero values fall back
// to the corresponding field in Defaults.
func New(options FormatterOptions) *Formatter {
	if options.IndentUnit == "" {
		options.IndentUnit = Defaults.IndentUnit
	}
	if options.MaxDepth < 1 {
		options.MaxDepth = Defaults.MaxDepth
	}

	return &Formatter{
		options:  options,
		table:    NewIndentTable(options.IndentUnit, options.MaxDepth, options.Overflow),
		sqlRules: bindSQLRules(options.IndentUnit),
	}
}

// Options returns the options this formatter was built with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Pretty renders text in the given language.
func (f *Formatter) Pretty(lang Language, text string) (string, error) {
	switch lang {
	case XML:
		return f.XML(text)
	case JSON:
		return f.JSON(text)
	case CSS:
		return f.CSS(text)
	case SQL:
		return f.SQL(text)
	default:
		return "", errors.Wrapf(ErrUnknownLanguage, "failed to format %q", lang)
	}
}

// Format renders text in the given language and writes the result to w.
func (f *Formatter) Format(w io.Writer, lang Language, text string) error {
	out, err := f.Pretty(lang, text)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// Format renders text with the given options and writes it to w (convenience function).
func Format(w io.Writer, options FormatterOptions, lang Language, text string) error {
	return New(options).Format(w, lang, text)
}
