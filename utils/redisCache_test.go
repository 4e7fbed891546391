package utils

import (
	"strings"
	"testing"
)

func TestGenerateCacheKeyIsDeterministic(t *testing.T) {
	filters := map[string]string{"search": "JC-2025", "archived": "false"}

	a := GenerateCacheKey("jobcards", filters, 1, 10)
	b := GenerateCacheKey("jobcards", map[string]string{"archived": "false", "search": "JC-2025"}, 1, 10)

	if a != b {
		t.Fatalf("same query hashed differently: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "jobcards:") {
		t.Fatalf("key %q is not prefixed by the resource type", a)
	}
}

func TestGenerateCacheKeyVariesWithInputs(t *testing.T) {
	base := GenerateCacheKey("jobcards", nil, 1, 10)

	if GenerateCacheKey("jobcards", nil, 2, 10) == base {
		t.Fatalf("page change did not change the key")
	}
	if GenerateCacheKey("jobcards", map[string]string{"search": "x"}, 1, 10) == base {
		t.Fatalf("filter change did not change the key")
	}
	if strings.HasPrefix(GenerateCacheKey("customers", nil, 1, 10), "jobcards:") {
		t.Fatalf("resource type leaked across keys")
	}
}
