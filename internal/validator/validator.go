// Package validator provides custom validation functions for Gin's binding engine.
//
// The rules mirror what the store can cast: a reference must be a UUID and a
// date must be parseable. Nothing beyond casting is enforced.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budget/internal/uuid"
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report JSON field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("ref", validateRef)
		_ = v.RegisterValidation("flexdate", validateFlexDate)
	}
}

// ParseDate parses an RFC 3339 timestamp, a plain YYYY-MM-DD date or an
// integer count of milliseconds since the Unix epoch.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateRef(fl validator.FieldLevel) bool {
	return uuid.IsValid(fl.Field().String())
}

func validateFlexDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}
