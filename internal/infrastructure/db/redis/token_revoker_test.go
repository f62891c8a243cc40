package redis

import "testing"

func TestKey(t *testing.T) {
	if got := key("01HZXK7Q"); got != "revoked:01HZXK7Q" {
		t.Fatalf("unexpected key %q", got)
	}
}
