package storage

// Store persists JSON-encoded collections under named keys.
//
// Reads are failure-tolerant: a missing key or a malformed payload leaves
// the destination value untouched, so callers always see an empty
// collection rather than an error. Writes report failure to the caller.
type Store interface {
	// Load decodes the collection stored under key into v. Missing keys
	// and undecodable payloads are treated as empty.
	Load(key string, v interface{})

	// Save encodes v and stores it under key, replacing any previous value.
	Save(key string, v interface{}) error

	// Remove deletes the collection stored under key. Removing a key that
	// does not exist is not an error.
	Remove(key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Factory is a function that opens a Store at the given path
type Factory func(path string) (Store, error)
