// Package uuid generates and checks the identifiers used as primary keys for
// accounts, categories and ledger entries.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string. Records created later sort after
// records created earlier, which keeps the natural order of a table close to
// insertion order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns its canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a well-formed UUID reference.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
