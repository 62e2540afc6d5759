// Package remote is a thin client for the hosted contacts API, the
// alternate persistence backend. Network and HTTP failures degrade to
// nil or empty results; callers decide whether to retry.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/adiwidodo/kontak/internal/contact"
)

// Client talks to a REST-style contacts API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListContacts fetches every contact. Returns an empty slice on failure.
func (c *Client) ListContacts() []contact.Contact {
	var contacts []contact.Contact
	if !c.do(http.MethodGet, c.baseURL+"/contacts", nil, &contacts) {
		return []contact.Contact{}
	}
	return contacts
}

// GetContact fetches a single contact by id. Returns nil on failure.
func (c *Client) GetContact(id int) *contact.Contact {
	var result contact.Contact
	if !c.do(http.MethodGet, fmt.Sprintf("%s/contacts/%d", c.baseURL, id), nil, &result) {
		return nil
	}
	return &result
}

// CreateContact posts a new contact and returns the stored record, or
// nil on failure
func (c *Client) CreateContact(data contact.Contact) *contact.Contact {
	var result contact.Contact
	if !c.do(http.MethodPost, c.baseURL+"/contacts", &data, &result) {
		return nil
	}
	return &result
}

// UpdateContact replaces the contact with the given id and returns the
// stored record, or nil on failure
func (c *Client) UpdateContact(id int, data contact.Contact) *contact.Contact {
	var result contact.Contact
	if !c.do(http.MethodPut, fmt.Sprintf("%s/contacts/%d", c.baseURL, id), &data, &result) {
		return nil
	}
	return &result
}

// DeleteContact removes the contact with the given id. Reports whether
// the API accepted the delete.
func (c *Client) DeleteContact(id int) bool {
	return c.do(http.MethodDelete, fmt.Sprintf("%s/contacts/%d", c.baseURL, id), nil, nil)
}

// do runs one request and decodes a JSON response into out when the
// status is 2xx. Every failure path logs and reports false.
func (c *Client) do(method, url string, body *contact.Contact, out interface{}) bool {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			log.Printf("Error encoding request for %s %s: %v", method, url, err)
			return false
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		log.Printf("Error building request for %s %s: %v", method, url, err)
		return false
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Error calling %s %s: %v", method, url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Unexpected status for %s %s: %d", method, url, resp.StatusCode)
		return false
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Printf("Error decoding response for %s %s: %v", method, url, err)
			return false
		}
	}

	return true
}
