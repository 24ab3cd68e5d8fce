package php

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/language"

	"github.com/chazu/phpcore/convert"
)

// Context carries the runtime settings value operations consult: number
// formatting precision, the character encoding of binary strings, the
// collation locale and where notices go.
//
// A nil *Context is valid everywhere and means DefaultContext().
type Context struct {
	// Precision is the number of significant digits used when a double
	// is converted to a string (php.ini "precision").
	Precision int

	// SerializePrecision is used in diagnostics; -1 selects the
	// shortest round-tripping form.
	SerializePrecision int

	// Encoding decodes binary blob chunks into text. Nil means bytes are
	// taken as they are.
	Encoding encoding.Encoding

	// Locale is the default culture of LocaleComparer.
	Locale language.Tag

	Reporter Reporter
}

// NewContext returns a context with PHP's default settings that reports
// through commonlog.
func NewContext() *Context {
	return &Context{
		Precision:          convert.DefaultPrecision,
		SerializePrecision: convert.ShortestPrecision,
		Locale:             language.AmericanEnglish,
		Reporter:           NewLogReporter(),
	}
}

var defaultContext = NewContext()

// DefaultContext returns the process-wide default context.
func DefaultContext() *Context {
	return defaultContext
}

func ctxOr(ctx *Context) *Context {
	if ctx == nil {
		return defaultContext
	}
	return ctx
}

func (ctx *Context) report(level Level, format string, args []any) {
	ctx = ctxOr(ctx)
	if ctx.Reporter == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	ctx.Reporter.Report(level, msg)
}

// Warning reports a warning.
func (ctx *Context) Warning(format string, args ...any) {
	ctx.report(LevelWarning, format, args)
}

// Notice reports a notice.
func (ctx *Context) Notice(format string, args ...any) {
	ctx.report(LevelNotice, format, args)
}

// Deprecated reports a deprecation.
func (ctx *Context) Deprecated(format string, args ...any) {
	ctx.report(LevelDeprecated, format, args)
}
