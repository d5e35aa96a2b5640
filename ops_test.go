package bigint

import "testing"

func TestIncDec(t *testing.T) {
	z := mustParse(t, "9")
	z.Inc()
	if z.String() != "10" {
		t.Fatalf("Inc: got %s, want 10", z.String())
	}
	z.Dec()
	z.Dec()
	if z.String() != "8" {
		t.Fatalf("Dec: got %s, want 8", z.String())
	}
}

func TestIncCarriesAcrossLimbBoundary(t *testing.T) {
	z := mustParse(t, "4294967295")
	z.Inc()
	if z.String() != "4294967296" {
		t.Fatalf("Inc at limb boundary: got %s, want 4294967296", z.String())
	}
}

func TestDecBelowZero(t *testing.T) {
	z := FromInt32(0)
	z.Dec()
	if z.String() != "-1" {
		t.Fatalf("Dec from 0: got %s, want -1", z.String())
	}
}

func TestPostIncReturnsOldValue(t *testing.T) {
	z := mustParse(t, "5")
	old := z.PostInc()
	if old.String() != "5" {
		t.Fatalf("PostInc returned %s, want 5", old.String())
	}
	if z.String() != "6" {
		t.Fatalf("z after PostInc = %s, want 6", z.String())
	}
}

func TestPostDecReturnsOldValue(t *testing.T) {
	z := mustParse(t, "5")
	old := z.PostDec()
	if old.String() != "5" {
		t.Fatalf("PostDec returned %s, want 5", old.String())
	}
	if z.String() != "4" {
		t.Fatalf("z after PostDec = %s, want 4", z.String())
	}
}
