package value_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

func TestKindObservers(t *testing.T) {
	cases := []struct {
		v    value.Value
		kind value.Kind
	}{
		{value.Null(), value.KindNull},
		{value.Bool(true), value.KindBool},
		{value.Int64(1), value.KindNumber},
		{value.String("x"), value.KindString},
		{value.NewArrayValue(storage.NewDefaultHandle()), value.KindArray},
		{value.NewObjectValue(storage.NewDefaultHandle()), value.KindObject},
	}
	for _, c := range cases {
		if c.v.Kind() != c.kind {
			t.Errorf("Kind() = %v, want %v", c.v.Kind(), c.kind)
		}
	}
}

func TestIsPrimitiveIsStructured(t *testing.T) {
	if !value.Null().IsPrimitive() || value.Null().IsStructured() {
		t.Errorf("null should be primitive, not structured")
	}
	obj := value.NewObjectValue(storage.NewDefaultHandle())
	if obj.IsPrimitive() || !obj.IsStructured() {
		t.Errorf("object should be structured, not primitive")
	}
}

func TestGettersReturnTypedErrorsOnMismatch(t *testing.T) {
	v := value.String("x")
	if _, err := v.GetBool(); err == nil {
		t.Errorf("GetBool on a string should error")
	}
	if _, err := v.GetInt64(); err == nil {
		t.Errorf("GetInt64 on a string should error")
	}
}

func TestGetInt64RejectsFractionalDouble(t *testing.T) {
	v := value.Double(1.5)
	if _, err := v.GetInt64(); err == nil {
		t.Errorf("GetInt64 on a fractional double should error, not truncate")
	}
}

func TestResetPreservesHandle(t *testing.T) {
	h := storage.NewDefaultHandle()
	v := value.NullIn(h)
	v.Reset(value.KindArray)
	if v.Kind() != value.KindArray {
		t.Fatalf("Reset did not change kind")
	}
	if !v.Handle().Equal(h) {
		t.Errorf("Reset changed the storage handle")
	}
}

func TestSetPromotesNullToObject(t *testing.T) {
	v := value.Null()
	if err := v.Set("a", value.Int64(1)); err != nil {
		t.Fatalf("Set on null: %v", err)
	}
	if v.Kind() != value.KindObject {
		t.Fatalf("Set did not promote null to object")
	}
	got, err := v.Get("a")
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	if n, _ := got.GetInt64(); n != 1 {
		t.Errorf("Get(a) = %d, want 1", n)
	}
}

func TestSetOnWrongKindErrors(t *testing.T) {
	v := value.Int64(1)
	if err := v.Set("a", value.Int64(2)); err == nil {
		t.Errorf("Set on a number should error, not silently promote")
	}
}

func TestGetKeyNotFound(t *testing.T) {
	v := value.NewObjectValue(storage.NewDefaultHandle())
	if _, err := v.Get("missing"); err == nil {
		t.Errorf("Get on a missing key should error")
	}
}

func TestAppendPromotesNullToArray(t *testing.T) {
	v := value.Null()
	if err := v.Append(value.Int64(1)); err != nil {
		t.Fatalf("Append on null: %v", err)
	}
	if v.Kind() != value.KindArray || v.Len() != 1 {
		t.Fatalf("Append did not promote null to a 1-element array: %+v", v)
	}
}

func TestAtIndexOutOfRange(t *testing.T) {
	v := value.NewArrayValue(storage.NewDefaultHandle())
	if _, err := v.AtIndex(0); err == nil {
		t.Errorf("AtIndex on empty array should error")
	}
}

func TestLenAndContains(t *testing.T) {
	v := value.NewObjectValue(storage.NewDefaultHandle())
	v.Set("a", value.Int64(1))
	v.Set("b", value.Int64(2))
	if v.Len() != 2 {
		t.Errorf("Len() = %d, want 2", v.Len())
	}
	if !v.Contains("a") || v.Contains("z") {
		t.Errorf("Contains() mismatch")
	}
	if value.Int64(1).Contains("a") {
		t.Errorf("Contains() on a non-object should always be false")
	}
}

func TestCopyToIsDeep(t *testing.T) {
	h1 := storage.NewDefaultHandle()
	h2 := storage.NewHandle(storage.NewPoolResource())
	defer h2.Release()

	src := value.NewArrayValue(h1)
	src.Append(value.String("nested"))

	dst := src.CopyTo(h2)
	src.AsArray().Append(value.Int64(99))

	if dst.Len() != 1 {
		t.Fatalf("CopyTo observed a later mutation to the source: Len() = %d", dst.Len())
	}
	if !dst.Handle().Equal(h2) {
		t.Errorf("CopyTo did not rebind the handle")
	}
}

func TestEqualStructural(t *testing.T) {
	h1 := storage.NewDefaultHandle()
	h2 := storage.NewHandle(storage.NewPoolResource())
	defer h2.Release()

	a := value.NewObjectValue(h1)
	a.Set("x", value.Int64(1))

	b := value.NewObjectValue(h2)
	b.Set("x", value.Int64(1))

	if !a.Equal(b) {
		t.Errorf("structurally identical objects under different resources should be Equal")
	}

	b.Set("x", value.Int64(2))
	if a.Equal(b) {
		t.Errorf("objects with different values should not be Equal")
	}
}

func TestEqualDistinguishesNumberKind(t *testing.T) {
	d := value.FromNumber(number.FromDouble(5))
	i := value.Int64(5)
	if d.Equal(i) {
		t.Errorf("a double 5.0 must not Equal an integer 5, per number classification identity")
	}
}
