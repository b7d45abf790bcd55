package entities

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Note is one developer comment segment paired with the location it most
// likely belongs to. The pairing is positional and only a hint for
// translators.
type Note struct {
	Text     string
	Location Location
	Kind     string    // "ParamType", "StateType", "EventType", "ThingClass", "vendor", "plugin"
	TypeID   uuid.UUID // uuid.Nil when the segment names no id
}

var (
	kindPattern = regexp.MustCompile(`^The name of the (\w+)`)
	idPattern   = regexp.MustCompile(`\{([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\}`)
)

// CommentSegments splits an extra comment on separator lines made of dashes.
func CommentSegments(comment string) []string {
	if strings.TrimSpace(comment) == "" {
		return nil
	}
	var (
		segments []string
		current  []string
	)
	for _, line := range strings.Split(comment, "\n") {
		if isSeparator(line) {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
			continue
		}
		current = append(current, line)
	}
	return append(segments, strings.Join(current, "\n"))
}

func isSeparator(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) >= 2 && strings.Trim(line, "-") == ""
}

// Notes pairs comment segment i with location i. Extra segments get an empty
// location; extra locations get an empty text.
func (m *Message) Notes() []Note {
	segments := CommentSegments(m.ExtraComment)
	n := max(len(segments), len(m.Locations))
	notes := make([]Note, n)
	for i := range notes {
		if i < len(m.Locations) {
			notes[i].Location = m.Locations[i]
		}
		if i < len(segments) {
			notes[i].Text = segments[i]
			notes[i].Kind, notes[i].TypeID = describe(segments[i])
		}
	}
	return notes
}

// NotesAligned reports whether every location has exactly one comment
// segment. Messages without an extra comment are aligned.
func (m *Message) NotesAligned() bool {
	segments := CommentSegments(m.ExtraComment)
	return len(segments) == 0 || len(segments) == len(m.Locations)
}

func describe(segment string) (string, uuid.UUID) {
	var kind string
	if match := kindPattern.FindStringSubmatch(segment); match != nil {
		kind = match[1]
	}
	id := uuid.Nil
	// The last id is the one the segment is about; "ThingClass: x, ID: {...}".
	if matches := idPattern.FindAllStringSubmatch(segment, -1); len(matches) > 0 {
		if parsed, err := uuid.Parse(matches[len(matches)-1][1]); err == nil {
			id = parsed
		}
	}
	return kind, id
}
