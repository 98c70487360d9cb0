package storage_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/storage"
)

func TestDefaultHandleAllocatesUsableSlice(t *testing.T) {
	h := storage.NewDefaultHandle()
	b := h.Allocate(16, storage.MaxAlign)
	if len(b) != 16 {
		t.Fatalf("Allocate(16) len = %d", len(b))
	}
	h.Deallocate(b)
}

func TestZeroHandleIsInert(t *testing.T) {
	var h storage.Handle
	b := h.Allocate(8, storage.MaxAlign)
	if len(b) != 8 {
		t.Fatalf("zero Handle Allocate len = %d", len(b))
	}
	h.Deallocate(b) // must not panic
	if !h.Equal(storage.Handle{}) {
		t.Errorf("two zero handles should be Equal")
	}
}

func TestHandleCloneSharesResource(t *testing.T) {
	h := storage.NewHandle(storage.NewPoolResource())
	c := h.Clone()
	if !h.Equal(c) {
		t.Errorf("Clone() should Equal the original handle")
	}
	h.Release()
	c.Release()
}

func TestHandlesFromDifferentResourcesAreNotEqual(t *testing.T) {
	a := storage.NewHandle(storage.NewPoolResource())
	b := storage.NewHandle(storage.NewPoolResource())
	if a.Equal(b) {
		t.Errorf("independent pool resources should not be Equal")
	}
}

func TestPoolResourceRoundTripsAcrossSizeClasses(t *testing.T) {
	res := storage.NewPoolResource()
	h := storage.NewHandle(res)
	defer h.Release()

	sizes := []int{1, 64, 65, 1024, 4096, 4097, 10000}
	for _, n := range sizes {
		b := h.Allocate(n, storage.MaxAlign)
		if len(b) != n {
			t.Fatalf("Allocate(%d) len = %d", n, len(b))
		}
		for i := range b {
			b[i] = 0xAA
		}
		h.Deallocate(b)
	}
}

func TestRepeatedDefaultHandlesShareResource(t *testing.T) {
	// Default() is a sync.Once singleton; only assert that whatever it
	// resolves to, repeated NewDefaultHandle calls share one resource.
	a := storage.NewDefaultHandle()
	b := storage.NewDefaultHandle()
	if !a.Equal(b) {
		t.Errorf("two default handles should share the same resource")
	}
}
