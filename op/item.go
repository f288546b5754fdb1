package op

import "strings"

// FieldNotes is the reserved free-text notes field. It is never published.
const FieldNotes = "notesPlain"

// Field is a single (name, value) pair from a vault item's field listing.
type Field struct {
	Name  string
	Value string
}

// The field listing scanner is a two-state machine: lines are ignored until
// the "Fields:" header, then indented "name: value" lines are collected until
// the first non-indented, non-blank line.
type scanState int

const (
	beforeFields scanState = iota
	inFields
)

// ParseItemFields extracts the Fields: section from the human-readable output
// of `op item get --reveal`. Blank lines inside the section are skipped; a
// field line is indented by at least two spaces, with the name being
// everything up to the first colon and the value everything after it, both
// trimmed. Output with no Fields: header yields no fields.
func ParseItemFields(output string) []Field {
	var fields []Field

	state := beforeFields
	for _, line := range strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n") {
		switch state {
		case beforeFields:
			if strings.TrimSpace(line) == "Fields:" {
				state = inFields
			}

		case inFields:
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !strings.HasPrefix(line, "  ") {
				// The first non-indented line ends the section, and
				// nothing after it is scanned.
				return fields
			}

			name, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			fields = append(fields, Field{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
	}

	return fields
}
