package bigint

import "testing"

func TestAndOrXorBasic(t *testing.T) {
	cases := []struct {
		a, b                string
		wantAnd, wantOr, wantXor string
	}{
		{"12", "10", "8", "14", "6"},
		{"-1", "255", "255", "-1", "-256"},
		{"-1", "-1", "-1", "-1", "0"},
		{"0", "0", "0", "0", "0"},
		{"5", "0", "0", "5", "5"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		var and, or, xor BigInt
		and.And(a, b)
		or.Or(a, b)
		xor.Xor(a, b)
		if and.String() != c.wantAnd {
			t.Errorf("%s & %s = %s, want %s", c.a, c.b, and.String(), c.wantAnd)
		}
		if or.String() != c.wantOr {
			t.Errorf("%s | %s = %s, want %s", c.a, c.b, or.String(), c.wantOr)
		}
		if xor.String() != c.wantXor {
			t.Errorf("%s ^ %s = %s, want %s", c.a, c.b, xor.String(), c.wantXor)
		}
	}
}

func TestBitwiseMismatchedLengths(t *testing.T) {
	a := mustParse(t, "18446744073709551616") // 2^64, three limbs
	b := mustParse(t, "3")                    // one limb
	var and, or BigInt
	and.And(a, b)
	or.Or(a, b)
	if and.String() != "0" {
		t.Fatalf("2^64 & 3 = %s, want 0", and.String())
	}
	if or.String() != "18446744073709551619" {
		t.Fatalf("2^64 | 3 = %s, want 18446744073709551619", or.String())
	}
}

func TestNotIsMinusXMinusOne(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "255", "-256", "123456789012345678901234567890"} {
		x := mustParse(t, s)
		var z BigInt
		z.Not(x)
		var check BigInt
		check.Add(x, &z)
		want := FromInt32(-1)
		if check.Cmp(want) != 0 {
			t.Errorf("^%s + %s should be -1, got %s", s, s, check.String())
		}
	}
}

func TestDoubleNotIsIdentity(t *testing.T) {
	x := mustParse(t, "-42")
	var once, twice BigInt
	once.Not(x)
	twice.Not(&once)
	if twice.Cmp(x) != 0 {
		t.Fatalf("^^x = %s, want %s", twice.String(), x.String())
	}
}
