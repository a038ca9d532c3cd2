// internal/utils/errors.go
package utils

import "sort"

// FieldErrors is the wire shape of a validation failure: each offending
// field maps to one or more messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msg := "invalid fields:"
	for _, field := range fields {
		msg += " " + field
	}
	return msg
}
