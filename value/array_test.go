package value_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

func TestArrayAppendAndAt(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArray(h)
	a.Append(value.Int64(1))
	a.Append(value.Int64(2))
	a.Append(value.Int64(3))

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if got, _ := a.At(1).GetInt64(); got != 2 {
		t.Errorf("At(1) = %d, want 2", got)
	}
	if !a.Front().Equal(value.Int64(1)) || !a.Back().Equal(value.Int64(3)) {
		t.Errorf("Front/Back mismatch")
	}
}

func TestArrayTryAtOutOfRange(t *testing.T) {
	a := value.NewArray(storage.NewDefaultHandle())
	if _, err := a.TryAt(0); err == nil {
		t.Fatalf("TryAt on empty array should error")
	}
}

func TestArrayInsertAndErase(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArrayOf(h, value.Int64(1), value.Int64(3))
	a.Insert(1, value.Int64(2))
	want := []int64{1, 2, 3}
	for i, w := range want {
		if got, _ := a.At(i).GetInt64(); got != w {
			t.Fatalf("At(%d) = %d, want %d", i, got, w)
		}
	}
	a.Erase(1)
	if a.Len() != 2 {
		t.Fatalf("Len() after Erase = %d", a.Len())
	}
	if got, _ := a.At(1).GetInt64(); got != 3 {
		t.Errorf("At(1) after Erase = %d, want 3", got)
	}
}

func TestArrayPopBackAndClear(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArrayOf(h, value.Int64(1), value.Int64(2))
	a.PopBack()
	if a.Len() != 1 {
		t.Fatalf("Len() after PopBack = %d", a.Len())
	}
	a.Clear()
	if a.Len() != 0 || !a.Empty() {
		t.Fatalf("Clear() left Len()=%d Empty()=%v", a.Len(), a.Empty())
	}
}

func TestArrayResize(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArray(h)
	a.Resize(3)
	if a.Len() != 3 {
		t.Fatalf("Resize(3): Len() = %d", a.Len())
	}
	for i := 0; i < 3; i++ {
		if !a.At(i).IsNull() {
			t.Errorf("Resize-padded element %d is not null", i)
		}
	}
	a.Resize(1)
	if a.Len() != 1 {
		t.Fatalf("Resize(1): Len() = %d", a.Len())
	}
}

func TestArrayReserveDoesNotChangeLen(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArray(h)
	a.Reserve(10)
	if a.Len() != 0 {
		t.Fatalf("Reserve changed Len() to %d", a.Len())
	}
	if a.Cap() < 10 {
		t.Fatalf("Cap() = %d, want >= 10", a.Cap())
	}
}

func TestArrayAppendRebindsCrossResourceElement(t *testing.T) {
	h1 := storage.NewDefaultHandle()
	h2 := storage.NewHandle(storage.NewPoolResource())
	defer h2.Release()

	a := value.NewArray(h2)
	a.Append(value.StringIn(h1, "cross"))

	if !a.At(0).Handle().Equal(h2) {
		t.Errorf("appended element was not rebound into the array's resource")
	}
	if got, _ := a.At(0).GetString(); got != "cross" {
		t.Errorf("content lost across rebind: %q", got)
	}
}

func TestArrayCloneToIsIndependent(t *testing.T) {
	h1 := storage.NewDefaultHandle()
	h2 := storage.NewHandle(storage.NewPoolResource())
	defer h2.Release()

	a := value.NewArrayOf(h1, value.Int64(1), value.Int64(2))
	clone := a.CloneTo(h2)

	a.Append(value.Int64(3))
	if clone.Len() != 2 {
		t.Fatalf("clone observed source mutation: Len() = %d", clone.Len())
	}
	if !clone.Handle().Equal(h2) {
		t.Errorf("clone not bound to target handle")
	}
}

func TestArrayEach(t *testing.T) {
	h := storage.NewDefaultHandle()
	a := value.NewArrayOf(h, value.Int64(1), value.Int64(2), value.Int64(3))
	var sum int64
	a.Each(func(i int, v value.Value) bool {
		n, _ := v.GetInt64()
		sum += n
		return true
	})
	if sum != 6 {
		t.Errorf("Each sum = %d, want 6", sum)
	}

	var seen []int
	a.Each(func(i int, v value.Value) bool {
		seen = append(seen, i)
		return i < 1 // stop after index 1
	})
	if len(seen) != 2 {
		t.Errorf("Each early-stop: visited %v, want 2 entries", seen)
	}
}

