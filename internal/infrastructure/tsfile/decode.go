// Package tsfile reads and writes Qt Linguist translation sources (.ts).
package tsfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"tscatalog/internal/domain"
	"tscatalog/internal/domain/entities"
)

var (
	errEmptyDocument  = errors.New("empty document")
	errWrongRoot      = errors.New("root element must be <TS>")
	errMissingName    = errors.New("context has no name")
	errDuplicateName  = errors.New("duplicate context name")
	errUnexpectedEOF  = errors.New("unexpected end of document")
	errBadLineNumber  = errors.New("line attribute is not a number")
	errBadByteElement = errors.New("byte element has an invalid value")
)

// Decode parses a TS document. Unknown elements and attributes are skipped.
// On failure the returned error is a *domain.ParseError and no catalog is
// returned.
func Decode(r io.Reader) (*entities.Catalog, error) {
	d := xml.NewDecoder(r)
	d.Strict = true
	d.CharsetReader = charsetReader

	dec := &decoder{d: d}
	cat, err := dec.document()
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

type decoder struct {
	d *xml.Decoder
}

type position struct {
	line, col int
}

func (dec *decoder) pos() position {
	line, col := dec.d.InputPos()
	return position{line: line, col: col}
}

func (dec *decoder) fail(at position, element string, err error) error {
	return &domain.ParseError{Line: at.line, Column: at.col, Element: element, Err: err}
}

// token returns the next token. Running out of input is an error here: every
// caller is inside an open element.
func (dec *decoder) token() (xml.Token, error) {
	tok, err := dec.d.Token()
	if errors.Is(err, io.EOF) {
		return nil, dec.fail(dec.pos(), "", errUnexpectedEOF)
	}
	if err != nil {
		return nil, dec.wrap(err)
	}
	return tok, nil
}

func (dec *decoder) skip() error {
	if err := dec.d.Skip(); err != nil {
		return dec.wrap(err)
	}
	return nil
}

// wrap turns a decoder failure into a ParseError. Syntax errors carry the
// line the XML decoder stopped at.
func (dec *decoder) wrap(err error) error {
	at := dec.pos()
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		at.line = syn.Line
	}
	return dec.fail(at, "", err)
}

func (dec *decoder) document() (*entities.Catalog, error) {
	var root xml.StartElement
	for {
		tok, err := dec.d.Token()
		if errors.Is(err, io.EOF) {
			return nil, dec.fail(dec.pos(), "", errEmptyDocument)
		}
		if err != nil {
			return nil, dec.wrap(err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root = start
			break
		}
	}
	if root.Name.Local != "TS" {
		return nil, dec.fail(dec.pos(), root.Name.Local, errWrongRoot)
	}

	cat := &entities.Catalog{
		Version:        attr(root, "version"),
		Locale:         attr(root, "language"),
		SourceLanguage: attr(root, "sourcelanguage"),
	}
	names := make(map[string]struct{})

	for {
		tok, err := dec.token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "context" {
				if err := dec.skip(); err != nil {
					return nil, err
				}
				continue
			}
			at := dec.pos()
			ctx, err := dec.context()
			if err != nil {
				return nil, err
			}
			if _, dup := names[ctx.Name]; dup {
				return nil, dec.fail(at, "context", fmt.Errorf("%w: %q", errDuplicateName, ctx.Name))
			}
			names[ctx.Name] = struct{}{}
			cat.Contexts = append(cat.Contexts, ctx)
		case xml.EndElement:
			return cat, dec.trailer()
		}
	}
}

// trailer consumes whatever follows the root element so that syntax errors
// after </TS> are still reported.
func (dec *decoder) trailer() error {
	for {
		_, err := dec.d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return dec.wrap(err)
		}
	}
}

func (dec *decoder) context() (*entities.Context, error) {
	start := dec.pos()
	ctx := &entities.Context{}
	named := false
	for {
		tok, err := dec.token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if ctx.Name, err = dec.text(); err != nil {
					return nil, err
				}
				named = true
			case "message":
				m, err := dec.message(t)
				if err != nil {
					return nil, err
				}
				ctx.Messages = append(ctx.Messages, m)
			default:
				if err := dec.skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if !named {
				return nil, dec.fail(start, "context", errMissingName)
			}
			return ctx, nil
		}
	}
}

func (dec *decoder) message(el xml.StartElement) (*entities.Message, error) {
	start := dec.pos()
	m := &entities.Message{Numerus: attr(el, "numerus") == "yes"}
	hasSource := false
	for {
		tok, err := dec.token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "location":
				loc, err := dec.location(t)
				if err != nil {
					return nil, err
				}
				m.Locations = append(m.Locations, loc)
			case "source":
				if m.Source, err = dec.text(); err != nil {
					return nil, err
				}
				hasSource = true
			case "comment":
				if m.Comment, err = dec.text(); err != nil {
					return nil, err
				}
			case "extracomment":
				if m.ExtraComment, err = dec.text(); err != nil {
					return nil, err
				}
			case "translatorcomment":
				if m.TranslatorComment, err = dec.text(); err != nil {
					return nil, err
				}
			case "translation":
				if m.Translation, err = dec.translation(t); err != nil {
					return nil, err
				}
			default:
				if err := dec.skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if !hasSource || m.Source == "" {
				return nil, dec.fail(start, "message", domain.ErrEmptySource)
			}
			return m, nil
		}
	}
}

func (dec *decoder) location(el xml.StartElement) (entities.Location, error) {
	at := dec.pos()
	loc := entities.Location{File: attr(el, "filename")}
	if raw := attr(el, "line"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return loc, dec.fail(at, "location", fmt.Errorf("%w: %q", errBadLineNumber, raw))
		}
		loc.Line = n
	}
	return loc, dec.skip()
}

func (dec *decoder) translation(el xml.StartElement) (entities.Translation, error) {
	tr := entities.Translation{
		Type:    entities.TranslationType(attr(el, "type")),
		Present: true,
	}
	var text strings.Builder
	for {
		tok, err := dec.token()
		if err != nil {
			return tr, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			switch t.Name.Local {
			case "numerusform":
				form, err := dec.text()
				if err != nil {
					return tr, err
				}
				tr.Forms = append(tr.Forms, form)
			case "byte":
				if err := dec.byteElement(t, &text); err != nil {
					return tr, err
				}
			default:
				if err := dec.skip(); err != nil {
					return tr, err
				}
			}
		case xml.EndElement:
			if len(tr.Forms) == 0 {
				tr.Text = text.String()
			}
			return tr, nil
		}
	}
}

// text collects the character data of the current element up to its end
// tag. Control characters are stored by Qt as <byte value="x1b"/>.
func (dec *decoder) text() (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if t.Name.Local == "byte" {
				if err := dec.byteElement(t, &b); err != nil {
					return "", err
				}
				continue
			}
			if err := dec.skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

func (dec *decoder) byteElement(el xml.StartElement, b *strings.Builder) error {
	at := dec.pos()
	raw := attr(el, "value")
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(raw, "x") {
		n, err = strconv.ParseUint(raw[1:], 16, 32)
	} else {
		n, err = strconv.ParseUint(raw, 10, 32)
	}
	if err != nil {
		return dec.fail(at, "byte", fmt.Errorf("%w: %q", errBadByteElement, raw))
	}
	b.WriteRune(rune(n))
	return dec.skip()
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
