package mongo

import (
	"testing"

	"github.com/townsquare/community/internal/core/domain"
)

func TestObjectID(t *testing.T) {
	oid, err := objectID("64b7f0c2a1b2c3d4e5f60718", domain.ErrPostNotFound)
	if err != nil || oid.Hex() != "64b7f0c2a1b2c3d4e5f60718" {
		t.Fatalf("unexpected result %v %v", oid, err)
	}

	for _, bad := range []string{"", "not-an-id", "64b7f0c2a1b2c3d4e5f6071"} {
		if _, err := objectID(bad, domain.ErrPostNotFound); err != domain.ErrPostNotFound {
			t.Errorf("objectID(%q) = %v, want post not found", bad, err)
		}
	}
}
