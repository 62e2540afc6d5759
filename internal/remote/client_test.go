package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nalgeon/be"

	"github.com/adiwidodo/kontak/internal/contact"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	contacts := []contact.Contact{
		{ID: 1, Name: "Gede Arya", Phone: "085891840619", Email: "arya@gmail.com"},
		{ID: 2, Name: "Haidar", Phone: "085123456789", Email: "haidar@gmail.com"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/contacts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(contacts)
		case http.MethodPost:
			var c contact.Contact
			if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			c.ID = 3
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(c)
		}
	})
	mux.HandleFunc("/contacts/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(contacts[0])
		case http.MethodPut:
			var c contact.Contact
			if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			c.ID = 1
			json.NewEncoder(w).Encode(c)
		case http.MethodDelete:
			json.NewEncoder(w).Encode(contacts[0])
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListContacts(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	contacts := c.ListContacts()
	be.Equal(t, len(contacts), 2)
	be.Equal(t, contacts[0].Name, "Gede Arya")
}

func TestGetContact(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	got := c.GetContact(1)
	be.True(t, got != nil)
	be.Equal(t, got.Phone, "085891840619")

	// Unknown ids degrade to nil, not an error
	be.True(t, c.GetContact(99) == nil)
}

func TestCreateContact(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	created := c.CreateContact(contact.Contact{Name: "Ben", Phone: "085158193111"})
	be.True(t, created != nil)
	be.Equal(t, created.ID, 3)
	be.Equal(t, created.Name, "Ben")
}

func TestUpdateContact(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	updated := c.UpdateContact(1, contact.Contact{Name: "Gede Arya", Phone: "089900011122"})
	be.True(t, updated != nil)
	be.Equal(t, updated.Phone, "089900011122")
}

func TestDeleteContact(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	be.True(t, c.DeleteContact(1))
	be.True(t, !c.DeleteContact(99))
}

func TestTransportFailureDegrades(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	c := NewClient(url)

	be.Equal(t, len(c.ListContacts()), 0)
	be.True(t, c.GetContact(1) == nil)
	be.True(t, c.CreateContact(contact.Contact{Name: "Ben"}) == nil)
	be.True(t, c.UpdateContact(1, contact.Contact{Name: "Ben"}) == nil)
	be.True(t, !c.DeleteContact(1))
}
