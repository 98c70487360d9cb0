package di_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/di"
	"github.com/kcenon/jsonvalue/value"
)

func TestDefaultValueFactory(t *testing.T) {
	f := di.NewValueFactory()
	h := f.NewHandle()

	obj := f.NewObject(h)
	if obj.Kind() != value.KindObject {
		t.Errorf("NewObject Kind() = %v, want object", obj.Kind())
	}

	arr := f.NewArray(h)
	if arr.Kind() != value.KindArray {
		t.Errorf("NewArray Kind() = %v, want array", arr.Kind())
	}
}

func TestDefaultParserAndSerializerFactories(t *testing.T) {
	pf := di.NewParserFactory()
	p := pf.NewParser()

	if _, err := p.Write([]byte(`{"a":1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := p.WriteEOF(); err != nil {
		t.Fatalf("WriteEOF: %v", err)
	}
	if !p.IsDone() {
		t.Fatalf("expected IsDone() after a complete document")
	}

	sf := di.NewSerializerFactory()
	s := sf.NewSerializer(p.Get())
	var out []byte
	buf := make([]byte, 64)
	for !s.Done() {
		n, err := s.Write(buf)
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		out = append(out, buf[:n]...)
	}
	if string(out) != `{"a":1}` {
		t.Errorf("got %q", string(out))
	}
}
