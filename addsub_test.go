package bigint

import "testing"

func TestAddBasic(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"1", "2", "3"},
		{"-1", "-2", "-3"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"3", "-5", "-2"},
		{"-3", "5", "2"},
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"-5", "5", "0"},
		{"4294967295", "1", "4294967296"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		var z BigInt
		z.Add(a, b)
		if z.String() != c.want {
			t.Errorf("%s + %s = %s, want %s", c.a, c.b, z.String(), c.want)
		}
	}
}

func TestSubBasic(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-5", "-3", "-2"},
		{"-3", "-5", "2"},
		{"5", "-3", "8"},
		{"-5", "3", "-8"},
		{"5", "5", "0"},
		{"0", "5", "-5"},
		{"4294967296", "1", "4294967295"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		var z BigInt
		z.Sub(a, b)
		if z.String() != c.want {
			t.Errorf("%s - %s = %s, want %s", c.a, c.b, z.String(), c.want)
		}
	}
}

func TestAddAliasesOperands(t *testing.T) {
	z := mustParse(t, "10")
	z.Add(z, z)
	if z.String() != "20" {
		t.Fatalf("z.Add(z, z) = %s, want 20", z.String())
	}
}

func TestSubAliasesOperands(t *testing.T) {
	z := mustParse(t, "10")
	z.Sub(z, z)
	if z.String() != "0" {
		t.Fatalf("z.Sub(z, z) = %s, want 0", z.String())
	}
}

func TestAddLargeCrossesManyLimbs(t *testing.T) {
	a := mustParse(t, "340282366920938463463374607431768211455") // 2^128 - 1
	b := mustParse(t, "1")
	var z BigInt
	z.Add(a, b)
	if z.String() != "340282366920938463463374607431768211456" {
		t.Fatalf("2^128-1 + 1 = %s", z.String())
	}
}
