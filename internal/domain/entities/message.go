package entities

// TranslationType is the completion flag of a translation.
type TranslationType string

const (
	TranslationFinished   TranslationType = ""
	TranslationUnfinished TranslationType = "unfinished"
	TranslationObsolete   TranslationType = "obsolete"
	TranslationVanished   TranslationType = "vanished"
)

// Location points back at the code that emits a message. Line is 0 when the
// file carries no line attribute.
type Location struct {
	File string
	Line int
}

// Translation holds the translated text of a message. Forms is used instead
// of Text for numerus messages. Present is false when the file had no
// translation element at all.
type Translation struct {
	Text    string
	Forms   []string
	Type    TranslationType
	Present bool
}

// Finished reports whether the translation is complete. Only "unfinished"
// marks a pending translation; any other flag counts as done.
func (t Translation) Finished() bool {
	return t.Present && t.Type != TranslationUnfinished
}

// Stale reports translations whose source string is gone from the code.
func (t Translation) Stale() bool {
	return t.Type == TranslationObsolete || t.Type == TranslationVanished
}

// Message is one translatable string, possibly emitted from several
// locations.
type Message struct {
	Source            string
	Comment           string // disambiguation
	ExtraComment      string // developer notes, one segment per location
	TranslatorComment string
	Numerus           bool
	Locations         []Location
	Translation       Translation
}

// Translated reports whether Display returns translated text.
func (m *Message) Translated() bool {
	if !m.Translation.Finished() {
		return false
	}
	return m.translatedText() != ""
}

// Display returns the string to show: the finished translation when there is
// one, otherwise the source text. It never returns an empty string for a
// message with a source.
func (m *Message) Display() string {
	if m.Translated() {
		return m.translatedText()
	}
	return m.Source
}

func (m *Message) translatedText() string {
	if m.Numerus {
		for _, f := range m.Translation.Forms {
			if f != "" {
				return f
			}
		}
		return ""
	}
	return m.Translation.Text
}
