package contact

import (
	"errors"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/adiwidodo/kontak/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(storage.NewMemoryStore())
	m.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return m
}

func addValid(t *testing.T, m *Manager, name, phone, email string) Contact {
	t.Helper()
	result := m.Add(Contact{Name: name, Phone: phone, Email: email, Address: "Jakarta"})
	be.True(t, result.Success)
	return *result.Contact
}

func TestAdd(t *testing.T) {
	m := newTestManager(t)

	result := m.Add(Contact{
		Name:    "Gede Arya",
		Phone:   "085891840619",
		Email:   "arya@gmail.com",
		Address: "Jakarta",
	})

	be.True(t, result.Success)
	be.Equal(t, result.Contact.ID, 1)
	be.Equal(t, result.Contact.Name, "Gede Arya")
	be.True(t, !result.Contact.CreatedAt.IsZero())
	be.Equal(t, result.Contact.CreatedAt, result.Contact.UpdatedAt)
	be.True(t, result.Contact.DeletedAt == nil)

	stored := m.Contacts()
	be.Equal(t, len(stored), 1)
	be.Equal(t, stored[0].ID, 1)
}

func TestAddNormalizesInput(t *testing.T) {
	m := newTestManager(t)

	result := m.Add(Contact{
		Name:    "  Gede Arya  ",
		Phone:   " 085891840619 ",
		Email:   " ARYA@Gmail.Com ",
		Address: " Jakarta ",
	})

	be.True(t, result.Success)
	be.Equal(t, result.Contact.Name, "Gede Arya")
	be.Equal(t, result.Contact.Phone, "085891840619")
	be.Equal(t, result.Contact.Email, "arya@gmail.com")
	be.Equal(t, result.Contact.Address, "Jakarta")
}

func TestAddRejectsInvalid(t *testing.T) {
	m := newTestManager(t)

	result := m.Add(Contact{Name: "Gede Arya", Phone: "123"})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, "Invalid phone format (e.g., 08123456789 or +628123456789)")
	be.Equal(t, result.Errors["phone"], "Invalid phone format (e.g., 08123456789 or +628123456789)")
	be.Equal(t, len(m.Contacts()), 0)
}

func TestAddRejectsDuplicatePhoneVariant(t *testing.T) {
	m := newTestManager(t)
	addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	// Same subscriber number in international format
	result := m.Add(Contact{Name: "Haidar", Phone: "+6285891840619", Address: "BSD"})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, `Phone number already exists for contact "Gede Arya"`)
	be.Equal(t, len(m.Contacts()), 1)
}

func TestAddRejectsDuplicateEmail(t *testing.T) {
	m := newTestManager(t)
	addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	result := m.Add(Contact{Name: "Haidar", Phone: "085123456789", Email: "Arya@Gmail.com"})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, `Email already exists for contact "Gede Arya"`)
}

func TestNextIDAfterFiveContacts(t *testing.T) {
	m := newTestManager(t)

	phones := []string{
		"085891840611", "085891840612", "085891840613",
		"085891840614", "085891840615",
	}
	for i, phone := range phones {
		result := m.Add(Contact{Name: "Contact " + string(rune('A'+i)), Phone: phone})
		be.True(t, result.Success)
		be.Equal(t, result.Contact.ID, i+1)
	}

	be.Equal(t, nextID(m.Contacts()), 6)
}

func TestNextIDSkipsReusedSlots(t *testing.T) {
	// Trashed contacts keep their ids reserved
	contacts := []Contact{
		{ID: 2, Name: "Haidar", Phone: "085123456789"},
		{ID: 7, Name: "Ben", Phone: "085123456780", DeletedAt: millis(1700000000000)},
	}
	be.Equal(t, nextID(contacts), 8)
	be.Equal(t, nextID(nil), 1)
}

func TestEdit(t *testing.T) {
	m := newTestManager(t)
	c := addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	phone := "089900011122"
	address := "Denpasar, Indonesia"
	result := m.Edit(c.ID, Patch{Phone: &phone, Address: &address})

	be.True(t, result.Success)
	be.Equal(t, result.Contact.Phone, "089900011122")
	be.Equal(t, result.Contact.Address, "Denpasar, Indonesia")
	// Unpatched fields survive the merge
	be.Equal(t, result.Contact.Name, "Gede Arya")
	be.Equal(t, result.Contact.Email, "arya@gmail.com")
	be.Equal(t, result.Contact.CreatedAt, c.CreatedAt)
}

func TestEditNotFound(t *testing.T) {
	m := newTestManager(t)

	name := "Nobody"
	result := m.Edit(42, Patch{Name: &name})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, "Contact not found!")
}

func TestEditKeepingOwnPhoneIsNotADuplicate(t *testing.T) {
	m := newTestManager(t)
	c := addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	// Re-submitting the same phone in another format must not collide
	// with the record being edited
	phone := "+6285891840619"
	result := m.Edit(c.ID, Patch{Phone: &phone})
	be.True(t, result.Success)
}

func TestEditRejectsCollisionWithOtherContact(t *testing.T) {
	m := newTestManager(t)
	addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")
	c := addValid(t, m, "Haidar", "085123456789", "haidar@gmail.com")

	phone := "+6285891840619"
	result := m.Edit(c.ID, Patch{Phone: &phone})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, `Phone number already exists for contact "Gede Arya"`)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	m := newTestManager(t)
	c := addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	be.True(t, m.SoftDelete(c.ID).Success)
	stored := m.Get(c.ID)
	be.True(t, stored.Deleted())

	// The number is free while its contact sits in the trash
	be.True(t, FindDuplicate("085891840619", m.Contacts(), 0) == nil)

	be.True(t, m.Restore(c.ID).Success)
	restored := m.Get(c.ID)
	be.True(t, !restored.Deleted())

	// Indistinguishable from its pre-delete state
	be.Equal(t, *restored, c)
}

func TestSoftDeleteNotFound(t *testing.T) {
	m := newTestManager(t)
	result := m.SoftDelete(42)
	be.True(t, !result.Success)
	be.Equal(t, result.Message, "Contact not found!")
}

func TestPermanentlyDeleteRoundTrip(t *testing.T) {
	m := newTestManager(t)
	addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")
	before := m.Contacts()

	c := addValid(t, m, "Haidar", "085123456789", "haidar@gmail.com")
	be.True(t, m.PermanentlyDelete(c.ID).Success)

	be.Equal(t, m.Contacts(), before)
}

func TestPermanentlyDeleteNotFound(t *testing.T) {
	m := newTestManager(t)
	result := m.PermanentlyDelete(42)
	be.True(t, !result.Success)
	be.Equal(t, result.Message, "Contact not found!")
}

func TestToggleFavorite(t *testing.T) {
	m := newTestManager(t)
	c := addValid(t, m, "Gede Arya", "085891840619", "arya@gmail.com")

	be.True(t, m.ToggleFavorite(c.ID).Success)
	be.True(t, m.Get(c.ID).Favorite)

	be.True(t, m.ToggleFavorite(c.ID).Success)
	be.True(t, !m.Get(c.ID).Favorite)
}

func TestBulkOperations(t *testing.T) {
	m := newTestManager(t)
	a := addValid(t, m, "Gede Arya", "085891840611", "arya@gmail.com")
	b := addValid(t, m, "Haidar", "085891840612", "haidar@gmail.com")
	c := addValid(t, m, "Ben", "085891840613", "ben@gmail.com")

	be.True(t, m.AddLabel("Work").Success)

	t.Run("set label", func(t *testing.T) {
		be.True(t, m.BulkSetLabel([]int{a.ID, b.ID}, "Work").Success)
		be.Equal(t, m.Get(a.ID).Label, "Work")
		be.Equal(t, m.Get(b.ID).Label, "Work")
		be.Equal(t, m.Get(c.ID).Label, "")
	})

	t.Run("clear label", func(t *testing.T) {
		be.True(t, m.BulkSetLabel([]int{a.ID}, "").Success)
		be.Equal(t, m.Get(a.ID).Label, "")
		be.Equal(t, m.Get(b.ID).Label, "Work")
	})

	t.Run("soft delete and restore", func(t *testing.T) {
		be.True(t, m.BulkSoftDelete([]int{a.ID, c.ID}).Success)
		be.True(t, m.Get(a.ID).Deleted())
		be.True(t, m.Get(c.ID).Deleted())
		be.True(t, !m.Get(b.ID).Deleted())

		be.True(t, m.BulkRestore([]int{a.ID, c.ID}).Success)
		be.True(t, !m.Get(a.ID).Deleted())
		be.True(t, !m.Get(c.ID).Deleted())
	})

	t.Run("permanent delete", func(t *testing.T) {
		be.True(t, m.BulkPermanentlyDelete([]int{b.ID, c.ID}).Success)
		be.Equal(t, len(m.Contacts()), 1)
		be.True(t, m.Get(b.ID) == nil)
	})
}

func TestEmptyTrash(t *testing.T) {
	m := newTestManager(t)
	a := addValid(t, m, "Gede Arya", "085891840611", "arya@gmail.com")
	b := addValid(t, m, "Haidar", "085891840612", "haidar@gmail.com")

	// Empty trash on an empty trash is fine
	be.True(t, m.EmptyTrash().Success)
	be.Equal(t, len(m.Contacts()), 2)

	be.True(t, m.SoftDelete(a.ID).Success)
	be.True(t, m.EmptyTrash().Success)

	contacts := m.Contacts()
	be.Equal(t, len(contacts), 1)
	be.Equal(t, contacts[0].ID, b.ID)
}

func TestPurgeTrash(t *testing.T) {
	m := newTestManager(t)
	a := addValid(t, m, "Gede Arya", "085891840611", "arya@gmail.com")
	b := addValid(t, m, "Haidar", "085891840612", "haidar@gmail.com")

	now := m.now()
	old := now.Add(-31 * 24 * time.Hour).UnixMilli()
	recent := now.Add(-29 * 24 * time.Hour).UnixMilli()

	contacts := m.Contacts()
	contacts[0].DeletedAt = &old
	contacts[1].DeletedAt = &recent
	be.Err(t, m.store.Save(contactsKey, contacts), nil)

	be.True(t, m.PurgeTrash(DefaultRetention).Success)

	remaining := m.Contacts()
	be.Equal(t, len(remaining), 1)
	be.Equal(t, remaining[0].ID, b.ID)
	be.True(t, m.Get(a.ID) == nil)
}

// failingStore reports every write as failed
type failingStore struct {
	storage.Store
}

func (s failingStore) Save(key string, v interface{}) error {
	return errors.New("disk full")
}

func TestWriteFailureSurfaced(t *testing.T) {
	m := NewManager(failingStore{storage.NewMemoryStore()})
	m.now = time.Now

	result := m.Add(Contact{Name: "Gede Arya", Phone: "085891840619"})
	be.True(t, !result.Success)
	be.Equal(t, result.Message, "Failed to save contacts: disk full")
}
