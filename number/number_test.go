package number_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/number"
)

func TestKindConstructors(t *testing.T) {
	if n := number.FromInt64(-7); !n.IsInt64() || n.Int64() != -7 {
		t.Errorf("FromInt64(-7): %+v", n)
	}
	if n := number.FromUint64(7); !n.IsUint64() || n.Uint64() != 7 {
		t.Errorf("FromUint64(7): %+v", n)
	}
	if n := number.FromDouble(1.5); !n.IsDouble() || n.Double() != 1.5 {
		t.Errorf("FromDouble(1.5): %+v", n)
	}
}

func TestStringRendersShortestRoundTrip(t *testing.T) {
	cases := []struct {
		n    number.Number
		want string
	}{
		{number.FromInt64(0), "0"},
		{number.FromInt64(-42), "-42"},
		{number.FromUint64(18446744073709551615), "18446744073709551615"},
		{number.FromDouble(3.5), "3.5"},
		{number.FromDouble(0.1), "0.1"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestEqualAcrossIntegerKinds(t *testing.T) {
	a := number.FromInt64(5)
	b := number.FromUint64(5)
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("5 (int64) should Equal 5 (uint64)")
	}
	neg := number.FromInt64(-1)
	if neg.Equal(b) {
		t.Errorf("-1 should never Equal an unsigned value")
	}
}

func TestDoubleNeverEqualsIntegerKindEvenAtEqualMagnitude(t *testing.T) {
	d := number.FromDouble(5)
	i := number.FromInt64(5)
	if d.Equal(i) || i.Equal(d) {
		t.Errorf("a Double and an integer kind must never compare Equal, per classification identity")
	}
}

func TestConversionsAcrossKinds(t *testing.T) {
	d := number.FromDouble(3.9)
	if got := d.Int64(); got != 3 {
		t.Errorf("Int64() truncation: got %d, want 3", got)
	}
	u := number.FromUint64(10)
	if got := u.Int64(); got != 10 {
		t.Errorf("Uint64->Int64: got %d", got)
	}
}
