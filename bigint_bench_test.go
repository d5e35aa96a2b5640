package bigint

import "testing"

func bigNumber(digits int) *BigInt {
	s := make([]byte, digits)
	for i := range s {
		s[i] = '9'
	}
	v, err := FromString(string(s))
	if err != nil {
		panic(err)
	}
	return v
}

func BenchmarkAdd(b *testing.B) {
	x, y := bigNumber(200), bigNumber(200)
	var z BigInt
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := bigNumber(200), bigNumber(200)
	var z BigInt
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
	}
}

func BenchmarkQuoRem(b *testing.B) {
	x, y := bigNumber(400), bigNumber(197)
	var q, r BigInt
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.QuoRem(x, y, &r)
	}
}

func BenchmarkString(b *testing.B) {
	x := bigNumber(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkFromString(b *testing.B) {
	s := bigNumber(500).String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromString(s); err != nil {
			b.Fatal(err)
		}
	}
}
