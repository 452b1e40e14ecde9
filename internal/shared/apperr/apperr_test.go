package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestPublicMessage(t *testing.T) {
	err := RequestFailedErr("Failed to fetch wears")
	if got := PublicMessage(err); got != "Failed to fetch wears" {
		t.Errorf("Expected public message, got %q", got)
	}

	if got := PublicMessage(errors.New("raw")); got != "Something went wrong." {
		t.Errorf("Expected fallback for plain errors, got %q", got)
	}
	if got := PublicMessage(nil); got != "Something went wrong." {
		t.Errorf("Expected fallback for nil, got %q", got)
	}
}

func TestPublicMessage_Wrapped(t *testing.T) {
	inner := NotAuthorizedErr("Access denied. Admins only.")
	wrapped := fmt.Errorf("login: %w", inner)

	if !IsKind(wrapped, NotAuthorized) {
		t.Error("Expected kind to survive wrapping")
	}
	if got := PublicMessage(wrapped); got != "Access denied. Admins only." {
		t.Errorf("Expected message to survive wrapping, got %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := NetworkErr("Failed to fetch orders", errors.New("dial refused"))
	if !IsKind(err, Network) {
		t.Error("Expected network kind")
	}
	if IsKind(err, Invalid) {
		t.Error("Expected kind mismatch to report false")
	}
	if IsKind(errors.New("raw"), Network) {
		t.Error("Expected plain error to match no kind")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Expected Wrap(nil) to be nil")
	}

	inner := errors.New("boom")
	err := Wrap(inner)
	if !errors.Is(err, inner) {
		t.Error("Expected wrapped error to unwrap")
	}
	if err.Kind != Internal {
		t.Errorf("Expected internal kind, got %q", err.Kind)
	}
}

func TestInvalidErrFields(t *testing.T) {
	err := InvalidErr("Please fill all required fields.", map[string]string{"image": "This field is required."})
	ae, ok := As(err)
	if !ok {
		t.Fatal("Expected an AppError")
	}
	if ae.Fields["image"] != "This field is required." {
		t.Errorf("Expected field message kept, got %q", ae.Fields["image"])
	}
}
