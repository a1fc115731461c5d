// Package testutil provides helpers shared by tests.
package testutil

import (
	"fmt"
	"os"
	"testing"
)

// MustFixture loads a fixture or panics. Only for package-level test
// variables; prefer Fixture inside test functions.
func MustFixture(path string) []byte {
	blob, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("error loading fixture %s: %v", path, err))
	}
	return blob
}

// Fixture loads a fixture relative to the calling test's package.
func Fixture(t *testing.T, path string) []byte {
	t.Helper()

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("error loading fixture %s: %v", path, err)
	}
	return blob
}
