package contact

import "strings"

var phoneSeparators = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")

// NormalizePhone canonicalizes an Indonesian phone number for equality
// comparison. Separators are stripped and the local "0" or international
// "+62" prefix is rewritten to a bare "62", so 0812..., +62812... and
// 62812... all normalize to the same string. The result is never
// persisted; contacts keep the number as the user typed it.
func NormalizePhone(phone string) string {
	normalized := phoneSeparators.Replace(strings.TrimSpace(phone))

	switch {
	case strings.HasPrefix(normalized, "+62"):
		normalized = normalized[1:]
	case strings.HasPrefix(normalized, "0"):
		normalized = "62" + normalized[1:]
	}

	return normalized
}
