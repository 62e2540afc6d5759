package contact

import (
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestPurgeExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	expired := now.Add(-31 * 24 * time.Hour).UnixMilli()
	recent := now.Add(-29 * 24 * time.Hour).UnixMilli()

	contacts := []Contact{
		{ID: 1, Name: "Active"},
		{ID: 2, Name: "Expired", DeletedAt: &expired},
		{ID: 3, Name: "Recent", DeletedAt: &recent},
	}

	kept := PurgeExpired(contacts, now, DefaultRetention)

	be.Equal(t, len(kept), 2)
	be.Equal(t, kept[0].ID, 1)
	be.Equal(t, kept[1].ID, 3)
}

func TestPurgeExpiredBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	exactly := now.Add(-30 * 24 * time.Hour).UnixMilli()

	contacts := []Contact{{ID: 1, Name: "Boundary", DeletedAt: &exactly}}

	// Exactly at the window counts as expired
	be.Equal(t, len(PurgeExpired(contacts, now, DefaultRetention)), 0)
}

func TestPurgeExpiredIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	expired := now.Add(-40 * 24 * time.Hour).UnixMilli()
	recent := now.Add(-1 * 24 * time.Hour).UnixMilli()

	contacts := []Contact{
		{ID: 1, Name: "Active"},
		{ID: 2, Name: "Expired", DeletedAt: &expired},
		{ID: 3, Name: "Recent", DeletedAt: &recent},
	}

	once := PurgeExpired(contacts, now, DefaultRetention)
	twice := PurgeExpired(once, now, DefaultRetention)

	be.Equal(t, twice, once)
}

func TestPurgeExpiredKeepsActive(t *testing.T) {
	now := time.Now()
	contacts := []Contact{
		{ID: 1, Name: "Gede Arya"},
		{ID: 2, Name: "Haidar", Favorite: true},
	}

	be.Equal(t, PurgeExpired(contacts, now, DefaultRetention), contacts)
}
