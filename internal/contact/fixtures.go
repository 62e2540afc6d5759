package contact

import (
	"fmt"

	"github.com/adiwidodo/kontak/internal/storage"
)

// CreateFixtures seeds a store with realistic sample data for demos and
// manual testing. Each contact goes through the normal Add path so the
// fixtures always satisfy validation and duplicate rules.
func CreateFixtures(store storage.Store) error {
	m := NewManager(store)

	for _, label := range []string{"Family", "Work", "Friends"} {
		if result := m.AddLabel(label); !result.Success {
			return fmt.Errorf("seeding label %s: %s", label, result.Message)
		}
	}

	fixtures := []Contact{
		{
			Name:     "Gede Arya",
			Phone:    "085891840619",
			Email:    "gedearya@gmail.com",
			Address:  "Jakarta, Indonesia",
			Label:    "Friends",
			Favorite: true,
		},
		{
			Name:    "Ardanu Wicaksono",
			Phone:   "+6282345678901",
			Email:   "ardanu@gmail.com",
			Address: "Riau, Indonesia",
			Label:   "Work",
		},
		{
			Name:    "Muhammad Alroy",
			Phone:   "6284567890123",
			Email:   "alroy@gmail.com",
			Address: "Surabaya, Indonesia",
			Label:   "Work",
		},
		{
			Name:    "Dimas Aditya",
			Phone:   "085678901234",
			Email:   "dimas@gmail.com",
			Address: "Bandung, Indonesia",
			Label:   "Family",
		},
		{
			Name:    "Lazuardy Anugrah",
			Phone:   "+6286789012345",
			Email:   "lazuardy@mail.com",
			Address: "Tangerang, Indonesia",
			Label:   "Friends",
		},
	}

	for _, c := range fixtures {
		if result := m.Add(c); !result.Success {
			return fmt.Errorf("seeding contact %s: %s", c.Name, result.Message)
		}
	}

	return nil
}
