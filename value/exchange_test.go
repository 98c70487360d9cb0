package value_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

type point struct {
	X, Y int64
}

func (p point) ToValue(h storage.Handle) value.Value {
	v := value.NewObjectValue(h)
	v.Set("x", value.Int64(p.X))
	v.Set("y", value.Int64(p.Y))
	return v
}

func (p *point) FromValue(v value.Value) error {
	x, err := v.Get("x")
	if err != nil {
		return err
	}
	y, err := v.Get("y")
	if err != nil {
		return err
	}
	p.X, _ = x.GetInt64()
	p.Y, _ = y.GetInt64()
	return nil
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	h := storage.NewDefaultHandle()
	src := point{X: 3, Y: 4}

	v := value.Store(h, src)

	var dst point
	if err := value.Load(v, &dst); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dst != src {
		t.Errorf("Load() = %+v, want %+v", dst, src)
	}
}
