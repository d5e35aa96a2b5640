package bigint

import "testing"

func TestCmpOrdering(t *testing.T) {
	ordered := []string{
		"-999999999999999999999999",
		"-100",
		"-1",
		"0",
		"1",
		"100",
		"999999999999999999999999",
	}
	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			a, b := mustParse(t, ordered[i]), mustParse(t, ordered[j])
			got := a.Cmp(b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestComparisonHelpers(t *testing.T) {
	a, b := mustParse(t, "5"), mustParse(t, "10")
	if !a.Less(b) || b.Less(a) {
		t.Fatal("Less is wrong")
	}
	if !b.Greater(a) || a.Greater(b) {
		t.Fatal("Greater is wrong")
	}
	if !a.LessEqual(a) || !a.LessEqual(b) {
		t.Fatal("LessEqual is wrong")
	}
	if !b.GreaterEqual(b) || !b.GreaterEqual(a) {
		t.Fatal("GreaterEqual is wrong")
	}
	if !a.Equal(mustParse(t, "5")) || a.Equal(b) {
		t.Fatal("Equal is wrong")
	}
}

func TestCmpNegativeZeroEqualsZero(t *testing.T) {
	z1 := mustParse(t, "-0")
	z2 := mustParse(t, "0")
	if !z1.Equal(z2) {
		t.Fatal("-0 should equal 0")
	}
}
