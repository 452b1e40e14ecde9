package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocal_RoundTrip(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "state"))

	if err := l.Save("token", []byte("abc")); err != nil {
		t.Fatalf("Expected save to succeed, got: %v", err)
	}

	data, err := l.Load("token")
	if err != nil {
		t.Fatalf("Expected load to succeed, got: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("Expected abc, got %q", data)
	}

	if err := l.Delete("token"); err != nil {
		t.Fatalf("Expected delete to succeed, got: %v", err)
	}
	if _, err := l.Load("token"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}
}

func TestLocal_LoadMissing(t *testing.T) {
	l := NewLocal(t.TempDir())
	if _, err := l.Load("never-saved"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestLocal_DeleteMissing(t *testing.T) {
	l := NewLocal(t.TempDir())
	if err := l.Delete("never-saved"); err != nil {
		t.Errorf("Expected delete of missing key to succeed, got: %v", err)
	}
}

func TestLocal_KeyStaysInsideBaseDir(t *testing.T) {
	base := t.TempDir()
	l := NewLocal(base)

	if err := l.Save("../escape", []byte("x")); err != nil {
		t.Fatalf("Expected save to succeed, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "..", "escape")); err == nil {
		t.Error("Expected no file written outside the base directory")
	}
	if _, err := l.Load("../escape"); err != nil {
		t.Errorf("Expected the sanitized key to load back, got: %v", err)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	if _, err := m.Load("k"); err != ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}

	payload := []byte("value")
	m.Save("k", payload)
	payload[0] = 'X'

	data, err := m.Load("k")
	if err != nil {
		t.Fatalf("Expected load to succeed, got: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("Expected stored copy isolated from caller, got %q", data)
	}

	m.Delete("k")
	if _, err := m.Load("k"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}
}
