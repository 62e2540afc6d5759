package contact

import (
	"regexp"
	"strings"
)

// Validation is the outcome of checking a single field
type Validation struct {
	Valid   bool
	Message string
}

// fieldRules describes the declarative checks for one form field.
// Evaluation order: required, min length, max length, pattern. The first
// failing rule wins; the rest are not evaluated.
type fieldRules struct {
	required  bool
	minLength int
	maxLength int
	pattern   *regexp.Regexp

	msgRequired  string
	msgMinLength string
	msgMaxLength string
	msgPattern   string
}

var validationRules = map[string]fieldRules{
	"name": {
		required:     true,
		minLength:    2,
		maxLength:    50,
		pattern:      regexp.MustCompile(`^[a-zA-Z\s]+$`),
		msgRequired:  "Name is required",
		msgMinLength: "Name must be at least 2 characters",
		msgMaxLength: "Name must not exceed 50 characters",
		msgPattern:   "Name can only contain letters and spaces",
	},
	"phone": {
		required:    true,
		pattern:     regexp.MustCompile(`^(\+62|62|0)[0-9]{9,12}$`),
		msgRequired: "Phone number is required",
		msgPattern:  "Invalid phone format (e.g., 08123456789 or +628123456789)",
	},
	"email": {
		pattern:    regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		msgPattern: "Invalid email format",
	},
	"address": {
		maxLength:    200,
		msgMaxLength: "Address must not exceed 200 characters",
	},
}

// ValidatedFields lists the form fields in the order a full-record
// validation checks them
var ValidatedFields = []string{"name", "phone", "email", "address"}

// ValidateField checks a single field value against its rules. Unknown
// fields are considered valid.
func ValidateField(field, value string) Validation {
	rules, ok := validationRules[field]
	if !ok {
		return Validation{Valid: true}
	}

	trimmed := strings.TrimSpace(value)

	if rules.required && trimmed == "" {
		return Validation{Message: rules.msgRequired}
	}

	// Optional fields skip the remaining checks when empty
	if trimmed == "" {
		return Validation{Valid: true}
	}

	if rules.minLength > 0 && len(trimmed) < rules.minLength {
		return Validation{Message: rules.msgMinLength}
	}

	if rules.maxLength > 0 && len(trimmed) > rules.maxLength {
		return Validation{Message: rules.msgMaxLength}
	}

	if rules.pattern != nil && !rules.pattern.MatchString(trimmed) {
		return Validation{Message: rules.msgPattern}
	}

	return Validation{Valid: true}
}

// ValidateContact runs per-field validation over the whole record and
// returns the failures keyed by field name. An empty map means the
// record passed.
func ValidateContact(c Contact) map[string]string {
	errs := make(map[string]string)

	for _, field := range ValidatedFields {
		var value string
		switch field {
		case "name":
			value = c.Name
		case "phone":
			value = c.Phone
		case "email":
			value = c.Email
		case "address":
			value = c.Address
		}

		if result := ValidateField(field, value); !result.Valid {
			errs[field] = result.Message
		}
	}

	return errs
}

// firstError returns the failure for the earliest field in form order,
// so single-message callers report errors in a stable sequence
func firstError(errs map[string]string) string {
	for _, field := range ValidatedFields {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	return ""
}
