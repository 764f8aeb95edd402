package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	hash, err := s.Put("Hello\n", "<p>Hello</p>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if hash != Hash("Hello\n") {
		t.Errorf("hash = %q, want %q", hash, Hash("Hello\n"))
	}

	rev, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rev.Source != "Hello\n" || rev.HTML != "<p>Hello</p>" {
		t.Errorf("Get(%q) = %+v, want source/html round trip", hash, rev)
	}
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("deadbeef")
	if err != ErrNotFound {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
}

func TestPutIsIdempotentByContentHash(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Put("Same\n", "<p>Same</p>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	second, err := s.Put("Same\n", "<p>Same</p>")
	if err != nil {
		t.Fatalf("Put (again): %v", err)
	}
	if first != second {
		t.Errorf("hashes differ across identical inserts: %q vs %q", first, second)
	}
}
