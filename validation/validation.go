// Package validation implements record validation for the blog CMS.
//
// Validation never fails fast: every violated field is collected into one
// Errors value so an admin can fix a whole form in a single round trip.
// Normalization (trimming, case folding, de-duplication) runs before
// validation so length and format checks see the canonical values.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	timeRe     = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	imageURLRe = regexp.MustCompile(`^(https?://.+|data:image/.+;base64,.+)$`)
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// FieldError is a single violated constraint on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors aggregates all field violations of one record.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Errors) add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// OrNil returns the error value, or nil when no field was violated. Needed
// because a typed nil slice in an error interface is not nil.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Has reports whether a violation was recorded for field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// TrimStrings trims surrounding whitespace from each value, in place.
func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// Dedupe collapses duplicates while preserving first-seen order and drops
// empty entries.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func lowerAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}

func runeLen(s string) int { return len([]rune(s)) }

func checkLen(errs *Errors, field, value string, min, max int, required bool) {
	n := runeLen(value)
	if n == 0 {
		if required {
			errs.add(field, "is required")
		}
		return
	}
	if min > 0 && n < min {
		errs.add(field, "must be at least %d characters", min)
	}
	if max > 0 && n > max {
		errs.add(field, "cannot exceed %d characters", max)
	}
}
