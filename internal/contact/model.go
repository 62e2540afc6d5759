package contact

import (
	"fmt"
	"strings"
	"time"
)

// Contact represents one address-book entry. DeletedAt is the trash
// marker: a nil pointer means active, a set pointer (epoch millis) means
// the contact is in the trash awaiting purge or restore.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Label     string    `json:"label,omitempty"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt *int64    `json:"deletedAt,omitempty"`
}

// Deleted reports whether the contact is in the trash
func (c Contact) Deleted() bool {
	return c.DeletedAt != nil
}

// DeletedTime returns the moment the contact was moved to the trash.
// Zero time if the contact is active.
func (c Contact) DeletedTime() time.Time {
	if c.DeletedAt == nil {
		return time.Time{}
	}
	return time.UnixMilli(*c.DeletedAt)
}

// Format renders a contact as a short multi-line card for display
func (c Contact) Format() string {
	s := fmt.Sprintf("%s\n%s", c.Name, c.Phone)
	if c.Email != "" {
		s += "\n" + c.Email
	}
	if c.Address != "" {
		s += "\n" + c.Address
	}
	return s
}

// normalize trims free-form input the same way on every write path, so
// stored values and comparisons always see the cleaned form
func normalize(c Contact) Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Address = strings.TrimSpace(c.Address)
	c.Avatar = strings.TrimSpace(c.Avatar)
	c.Label = strings.TrimSpace(c.Label)
	return c
}
