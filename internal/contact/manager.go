package contact

import (
	"fmt"
	"time"

	"github.com/adiwidodo/kontak/internal/storage"
)

// Storage keys for the two collections
const (
	contactsKey = "contacts"
	labelsKey   = "labels"
)

const msgNotFound = "Contact not found!"

// Result is the outcome of a mutation. Every failure mode is reported
// here as a value; nothing panics or returns an error across this
// boundary.
type Result struct {
	Success bool
	Message string
	// Errors holds per-field validation messages for form display
	Errors  map[string]string
	Contact *Contact
}

func failure(message string) Result {
	return Result{Message: message}
}

// Patch holds the fields of an edit request. Nil fields keep the
// existing value.
type Patch struct {
	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	Avatar   *string
	Label    *string
	Favorite *bool
}

func (p Patch) apply(c Contact) Contact {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.Label != nil {
		c.Label = *p.Label
	}
	if p.Favorite != nil {
		c.Favorite = *p.Favorite
	}
	return c
}

// Manager orchestrates the contact lifecycle over a storage backend.
// Every operation is a single load-modify-save cycle.
type Manager struct {
	store storage.Store
	now   func() time.Time
}

// NewManager creates a manager over the given store
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Contacts returns every stored contact, including those in the trash
func (m *Manager) Contacts() []Contact {
	var contacts []Contact
	m.store.Load(contactsKey, &contacts)
	return contacts
}

// Get returns the contact with the given id, or nil
func (m *Manager) Get(id int) *Contact {
	contacts := m.Contacts()
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i]
		}
	}
	return nil
}

// nextID assigns ids monotonically: one past the highest id ever still
// present, starting at 1. Trashed contacts keep their ids reserved.
func nextID(contacts []Contact) int {
	maxID := 0
	for _, c := range contacts {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// validate runs field validation then duplicate detection against the
// active contacts, excluding excludeID. A phone match or an email match
// is each sufficient to reject.
func validate(c Contact, contacts []Contact, excludeID int) Result {
	if errs := ValidateContact(c); len(errs) > 0 {
		return Result{Message: firstError(errs), Errors: errs}
	}

	if dup := FindDuplicate(c.Phone, contacts, excludeID); dup != nil {
		return failure(fmt.Sprintf("Phone number already exists for contact %q", dup.Name))
	}
	if dup := findEmailDuplicate(c.Email, contacts, excludeID); dup != nil {
		return failure(fmt.Sprintf("Email already exists for contact %q", dup.Name))
	}

	return Result{Success: true}
}

// Add validates and stores a new contact, assigning its id and creation
// timestamp
func (m *Manager) Add(raw Contact) Result {
	contacts := m.Contacts()
	c := normalize(raw)

	if result := validate(c, contacts, 0); !result.Success {
		return result
	}

	now := m.now()
	c.ID = nextID(contacts)
	c.CreatedAt = now
	c.UpdatedAt = now
	c.DeletedAt = nil

	contacts = append(contacts, c)
	if err := m.store.Save(contactsKey, contacts); err != nil {
		return failure(fmt.Sprintf("Failed to save contacts: %v", err))
	}

	return Result{Success: true, Contact: &c}
}

// Edit merges the patch over the stored contact, re-validates, and
// persists in place
func (m *Manager) Edit(id int, patch Patch) Result {
	contacts := m.Contacts()

	index := -1
	for i := range contacts {
		if contacts[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return failure(msgNotFound)
	}

	updated := normalize(patch.apply(contacts[index]))

	if result := validate(updated, contacts, id); !result.Success {
		return result
	}

	updated.UpdatedAt = m.now()
	contacts[index] = updated

	if err := m.store.Save(contactsKey, contacts); err != nil {
		return failure(fmt.Sprintf("Failed to save contacts: %v", err))
	}

	return Result{Success: true, Contact: &contacts[index]}
}

// mutate applies fn to every contact whose id is in ids and persists the
// collection. Returns not-found when no id matched.
func (m *Manager) mutate(ids map[int]bool, fn func(*Contact)) Result {
	contacts := m.Contacts()

	matched := 0
	for i := range contacts {
		if ids[contacts[i].ID] {
			fn(&contacts[i])
			matched++
		}
	}
	if matched == 0 {
		return failure(msgNotFound)
	}

	if err := m.store.Save(contactsKey, contacts); err != nil {
		return failure(fmt.Sprintf("Failed to save contacts: %v", err))
	}

	return Result{Success: true}
}

// SoftDelete moves a contact to the trash. The record is kept and can be
// restored until the retention window expires.
func (m *Manager) SoftDelete(id int) Result {
	deletedAt := m.now().UnixMilli()
	return m.mutate(map[int]bool{id: true}, func(c *Contact) {
		c.DeletedAt = &deletedAt
	})
}

// Restore takes a contact out of the trash
func (m *Manager) Restore(id int) Result {
	return m.mutate(map[int]bool{id: true}, func(c *Contact) {
		c.DeletedAt = nil
	})
}

// ToggleFavorite flips the favorite flag
func (m *Manager) ToggleFavorite(id int) Result {
	return m.mutate(map[int]bool{id: true}, func(c *Contact) {
		c.Favorite = !c.Favorite
	})
}

// PermanentlyDelete removes a contact from storage entirely
func (m *Manager) PermanentlyDelete(id int) Result {
	return m.remove(func(c Contact) bool { return c.ID == id })
}

// EmptyTrash permanently deletes every contact in the trash
func (m *Manager) EmptyTrash() Result {
	result := m.remove(func(c Contact) bool { return c.Deleted() })
	if !result.Success && result.Message == msgNotFound {
		// An already-empty trash is not an error
		return Result{Success: true}
	}
	return result
}

// remove drops every contact matching the predicate and persists the
// rest. Returns not-found when nothing matched.
func (m *Manager) remove(match func(Contact) bool) Result {
	contacts := m.Contacts()

	kept := contacts[:0:0]
	for _, c := range contacts {
		if !match(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(contacts) {
		return failure(msgNotFound)
	}

	if err := m.store.Save(contactsKey, kept); err != nil {
		return failure(fmt.Sprintf("Failed to save contacts: %v", err))
	}

	return Result{Success: true}
}

// BulkSetLabel applies a label to the selected contacts in one write.
// An empty label clears the selection's labels.
func (m *Manager) BulkSetLabel(ids []int, label string) Result {
	return m.mutate(idSet(ids), func(c *Contact) {
		c.Label = label
	})
}

// BulkSoftDelete moves the selected contacts to the trash in one write
func (m *Manager) BulkSoftDelete(ids []int) Result {
	deletedAt := m.now().UnixMilli()
	return m.mutate(idSet(ids), func(c *Contact) {
		c.DeletedAt = &deletedAt
	})
}

// BulkRestore takes the selected contacts out of the trash in one write
func (m *Manager) BulkRestore(ids []int) Result {
	return m.mutate(idSet(ids), func(c *Contact) {
		c.DeletedAt = nil
	})
}

// BulkPermanentlyDelete removes the selected contacts entirely
func (m *Manager) BulkPermanentlyDelete(ids []int) Result {
	set := idSet(ids)
	return m.remove(func(c Contact) bool { return set[c.ID] })
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// PurgeTrash drops contacts whose retention window has expired. Run once
// at startup, before the first view is computed.
func (m *Manager) PurgeTrash(window time.Duration) Result {
	contacts := m.Contacts()
	purged := PurgeExpired(contacts, m.now(), window)
	if len(purged) == len(contacts) {
		return Result{Success: true}
	}

	if err := m.store.Save(contactsKey, purged); err != nil {
		return failure(fmt.Sprintf("Failed to save contacts: %v", err))
	}

	return Result{Success: true}
}
