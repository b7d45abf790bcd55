package i18n

import (
	"fmt"
	"io"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"tscatalog/internal/domain/entities"
)

// MessageID is the go-i18n id of a catalog message. It matches the id go-i18n
// derives from the nested tables ExportTOML writes.
func MessageID(contextName, source string) string {
	return contextName + "." + source
}

// CatalogMessages converts the finished translations of c, keyed by context
// name. Untranslated messages are left out so that lookups miss and callers
// show the source.
func CatalogMessages(c *entities.Catalog) map[string][]*i18n.Message {
	msgs := make(map[string][]*i18n.Message, len(c.Contexts))
	for _, ctx := range c.Contexts {
		for _, m := range ctx.Messages {
			if !m.Translated() {
				continue
			}
			msgs[ctx.Name] = append(msgs[ctx.Name], catalogMessage(ctx.Name, m))
		}
	}
	return msgs
}

func catalogMessage(contextName string, m *entities.Message) *i18n.Message {
	msg := &i18n.Message{
		ID:          MessageID(contextName, m.Source),
		Description: m.ExtraComment,
		Other:       m.Display(),
	}
	if m.Numerus && len(m.Translation.Forms) > 1 {
		msg.One = m.Translation.Forms[0]
		msg.Other = m.Translation.Forms[len(m.Translation.Forms)-1]
	}
	return msg
}

// ExportFileName is the go-i18n message file name for c, e.g.
// "active.de-DE.toml".
func ExportFileName(c *entities.Catalog) string {
	return "active." + c.Tag().String() + ".toml"
}

// ExportTOML writes the finished translations of c as a go-i18n message file:
// one table per context, one sub-table per source text.
func ExportTOML(w io.Writer, c *entities.Catalog) error {
	doc := make(map[string]map[string]map[string]string)
	for contextName, msgs := range CatalogMessages(c) {
		table := make(map[string]map[string]string, len(msgs))
		for _, msg := range msgs {
			source := strings.TrimPrefix(msg.ID, contextName+".")
			if _, dup := table[source]; dup {
				continue
			}
			entry := map[string]string{"other": msg.Other}
			if msg.One != "" {
				entry["one"] = msg.One
			}
			if msg.Description != "" {
				entry["description"] = msg.Description
			}
			table[source] = entry
		}
		doc[contextName] = table
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("export %s: %w", ExportFileName(c), err)
	}
	return nil
}
