package pkguid

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDGenerateSortable(t *testing.T) {
	gen := NewULID()
	first := gen.Generate()
	second := gen.Generate()

	if _, err := ulid.Parse(first); err != nil {
		t.Fatalf("expected valid ulid, got %q", first)
	}
	if first >= second {
		t.Fatalf("expected %q < %q", first, second)
	}
}
