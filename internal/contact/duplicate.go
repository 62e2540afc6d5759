package contact

import "strings"

// FindDuplicate returns the first active contact whose normalized phone
// number equals the probe, or nil. The contact with id excludeID is
// skipped so a record can be edited in place; pass 0 when adding.
// Contacts in the trash never count as duplicates.
func FindDuplicate(phone string, contacts []Contact, excludeID int) *Contact {
	normalized := NormalizePhone(phone)

	for i := range contacts {
		c := &contacts[i]
		if excludeID != 0 && c.ID == excludeID {
			continue
		}
		if c.Deleted() {
			continue
		}
		if NormalizePhone(c.Phone) == normalized {
			return c
		}
	}

	return nil
}

// findEmailDuplicate returns the first active contact with a
// case-insensitively equal email, skipping excludeID and trashed
// contacts. Empty emails never collide.
func findEmailDuplicate(email string, contacts []Contact, excludeID int) *Contact {
	if email == "" {
		return nil
	}
	lowered := strings.ToLower(email)

	for i := range contacts {
		c := &contacts[i]
		if excludeID != 0 && c.ID == excludeID {
			continue
		}
		if c.Deleted() {
			continue
		}
		if strings.ToLower(c.Email) == lowered {
			return c
		}
	}

	return nil
}
