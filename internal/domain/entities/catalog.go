package entities

import (
	"strings"

	"golang.org/x/text/language"
)

// Catalog is one translation file: every context of a plugin for a single
// target locale. It is read-only once loaded.
type Catalog struct {
	Locale         string // as written in the file, e.g. "en_US"
	Version        string
	SourceLanguage string
	Contexts       []*Context
}

// Context groups the messages of one plugin or device class.
type Context struct {
	Name     string
	Messages []*Message
}

// Tag returns the catalog locale as a BCP 47 tag, or language.Und when the
// locale is unset or unparseable.
func (c *Catalog) Tag() language.Tag {
	return ParseLocale(c.Locale)
}

// Context returns the context called name, or nil.
func (c *Catalog) Context(name string) *Context {
	for _, ctx := range c.Contexts {
		if ctx.Name == name {
			return ctx
		}
	}
	return nil
}

// MessageCount is the number of messages across all contexts.
func (c *Catalog) MessageCount() int {
	n := 0
	for _, ctx := range c.Contexts {
		n += len(ctx.Messages)
	}
	return n
}

// ParseLocale accepts Qt style ids ("de_DE") as well as BCP 47 ("de-DE").
func ParseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Duplicates lists the source texts that occur more than once in the context.
func (c *Context) Duplicates() []string {
	seen := make(map[string]int, len(c.Messages))
	var dups []string
	for _, m := range c.Messages {
		seen[m.Source]++
		if seen[m.Source] == 2 {
			dups = append(dups, m.Source)
		}
	}
	return dups
}
