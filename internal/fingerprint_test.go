package internal

import "testing"

func TestDeriveID(t *testing.T) {
	a := DeriveID([]byte("memory_mismatch summary"))
	b := DeriveID([]byte("memory_mismatch summary"))
	c := DeriveID([]byte("rule_mismatch summary"))

	if a != b {
		t.Errorf("same content gave %q and %q", a, b)
	}
	if a == c {
		t.Errorf("distinct content both gave %q", a)
	}
	if len(a) != FingerprintLen {
		t.Errorf("length = %d, want %d", len(a), FingerprintLen)
	}
}

func TestDeriveIDEmptyContent(t *testing.T) {
	if got := DeriveID(nil); len(got) != FingerprintLen {
		t.Errorf("nil content id = %q", got)
	}
}
