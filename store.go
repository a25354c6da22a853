package faktur

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys. The book file is a single JSON object with one property per
// key; each key is independently readable and writable.
const (
	KeyCustomers      = "customers"
	KeyProducts       = "products"
	KeyInvoices       = "invoices"
	KeyInvoiceCounter = "invoiceCounter"
)

// Store is the only I/O boundary of the book: a durable key-value store
// backed by one flat JSON file. A missing file, a missing key or an
// undecodable value always degrades to the caller's default, never to an
// error; only writes can fail.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. The file is created
// on the first write.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the path of the backing file.
func (s *Store) Path() string { return s.path }

// read loads the backing file as raw key-value pairs. Any read or decode
// failure yields an empty map.
func (s *Store) read() map[string]json.RawMessage {
	kv := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return kv
	}
	if err := json.Unmarshal(data, &kv); err != nil {
		return make(map[string]json.RawMessage)
	}
	return kv
}

// Get decodes the value stored under key into out. It reports whether out
// was populated: false means the key was absent or corrupt and out keeps its
// default.
func (s *Store) Get(key string, out any) bool {
	raw, ok := s.read()[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Put overwrites the value stored under key.
func (s *Store) Put(key string, v any) error {
	return s.PutAll(map[string]any{key: v})
}

// PutAll overwrites several keys as one logical unit. The file is replaced
// with a rename, so no partial write is ever observable.
func (s *Store) PutAll(values map[string]any) error {
	kv := s.read()
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("could not encode %q: %w", key, err)
		}
		kv[key] = raw
	}

	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", s.path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close store file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not set store file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace store file: %w", err)
	}
	return nil
}
