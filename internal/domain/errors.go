package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrParse          = errors.New("catalog could not be parsed")
	ErrLookupMiss     = errors.New("no catalog entry for context and source")
	ErrLocaleNotFound = errors.New("no catalog for locale")
	ErrContextUnknown = errors.New("unknown context")
	ErrEmptySource    = errors.New("source text is required")
)

// Most specific first: a ParseError may wrap ErrEmptySource.
var codes = []struct {
	err  error
	code string
}{
	{ErrEmptySource, "empty_source"},
	{ErrContextUnknown, "context_unknown"},
	{ErrLocaleNotFound, "locale_not_found"},
	{ErrLookupMiss, "lookup_miss"},
	{ErrParse, "parse_error"},
}

// Code returns the stable code of the domain error wrapped in err, or "".
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// ParseError reports a malformed catalog. Line and Column point at the
// offending element when the decoder knows it.
type ParseError struct {
	Line    int
	Column  int
	Element string
	Err     error
}

func (e *ParseError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.Element != "" {
		return fmt.Sprintf("parse catalog at %s <%s>: %v", pos, e.Element, e.Err)
	}
	return fmt.Sprintf("parse catalog at %s: %v", pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// LookupMissError is returned when a (context, source) pair has no entry.
// It is distinct from a found but untranslated message.
type LookupMissError struct {
	Locale  string
	Context string
	Source  string
}

func (e *LookupMissError) Error() string {
	if e.Locale != "" {
		return fmt.Sprintf("lookup %s/%q in %s: %v", e.Context, e.Source, e.Locale, ErrLookupMiss)
	}
	return fmt.Sprintf("lookup %s/%q: %v", e.Context, e.Source, ErrLookupMiss)
}

func (e *LookupMissError) Is(target error) bool { return target == ErrLookupMiss }
