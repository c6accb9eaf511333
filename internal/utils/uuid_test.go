package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if first == second {
		t.Fatal("expected unique identifiers")
	}

	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("generated value is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected uuid v7, got v%d", parsed.Version())
	}
}
