package services

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps an input field to its validation messages. It is returned
// by input validation instead of a transport-specific form/serializer object,
// and is serialized as the "details" object of a 400 response.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(fe[field], "; ")))
	}
	return strings.Join(parts, ", ")
}
