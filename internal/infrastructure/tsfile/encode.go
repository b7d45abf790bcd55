package tsfile

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"tscatalog/internal/domain/entities"
)

// DefaultVersion is written when a catalog carries no format version.
const DefaultVersion = "2.1"

// Encode writes c in the layout lupdate produces, so a decoded lupdate file
// encodes back to the same bytes.
func Encode(w io.Writer, c *entities.Catalog) error {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE TS>\n")

	version := c.Version
	if version == "" {
		version = DefaultVersion
	}
	buf.WriteString(`<TS version="` + escape(version) + `"`)
	if c.Locale != "" {
		buf.WriteString(` language="` + escape(c.Locale) + `"`)
	}
	if c.SourceLanguage != "" {
		buf.WriteString(` sourcelanguage="` + escape(c.SourceLanguage) + `"`)
	}
	buf.WriteString(">\n")

	for _, ctx := range c.Contexts {
		buf.WriteString("<context>\n")
		element(&buf, 1, "name", ctx.Name)
		for _, m := range ctx.Messages {
			writeMessage(&buf, m)
		}
		buf.WriteString("</context>\n")
	}
	buf.WriteString("</TS>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func writeMessage(buf *bytes.Buffer, m *entities.Message) {
	indent(buf, 1)
	if m.Numerus {
		buf.WriteString("<message numerus=\"yes\">\n")
	} else {
		buf.WriteString("<message>\n")
	}
	for _, loc := range m.Locations {
		indent(buf, 2)
		buf.WriteString(`<location filename="` + escape(loc.File) + `"`)
		if loc.Line != 0 {
			buf.WriteString(` line="` + strconv.Itoa(loc.Line) + `"`)
		}
		buf.WriteString("/>\n")
	}
	element(buf, 2, "source", m.Source)
	if m.Comment != "" {
		element(buf, 2, "comment", m.Comment)
	}
	if m.ExtraComment != "" {
		element(buf, 2, "extracomment", m.ExtraComment)
	}
	if m.TranslatorComment != "" {
		element(buf, 2, "translatorcomment", m.TranslatorComment)
	}
	if m.Translation.Present {
		writeTranslation(buf, m)
	}
	indent(buf, 1)
	buf.WriteString("</message>\n")
}

func writeTranslation(buf *bytes.Buffer, m *entities.Message) {
	indent(buf, 2)
	buf.WriteString("<translation")
	if m.Translation.Type != entities.TranslationFinished {
		buf.WriteString(` type="` + escape(string(m.Translation.Type)) + `"`)
	}
	buf.WriteString(">")
	if len(m.Translation.Forms) > 0 {
		buf.WriteString("\n")
		for _, form := range m.Translation.Forms {
			element(buf, 3, "numerusform", form)
		}
		indent(buf, 2)
	} else {
		buf.WriteString(escape(m.Translation.Text))
	}
	buf.WriteString("</translation>\n")
}

func element(buf *bytes.Buffer, depth int, name, text string) {
	indent(buf, depth)
	buf.WriteString("<" + name + ">" + escape(text) + "</" + name + ">\n")
}

func indent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString("    ")
	}
}

// escape mirrors lupdate: the five XML entities, and control characters other
// than tab and newline as byte elements. A raw CR would be read back as a
// newline, so it is written as a byte element too.
func escape(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			if r < 0x20 && r != '\t' && r != '\n' {
				fmt.Fprintf(&b, `<byte value="x%x"/>`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
