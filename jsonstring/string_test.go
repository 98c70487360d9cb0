package jsonstring_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/jsonstring"
	"github.com/kcenon/jsonvalue/storage"
)

func TestNewCopiesBytes(t *testing.T) {
	h := storage.NewDefaultHandle()
	src := []byte("hello")
	s := jsonstring.NewBytes(h, src)
	src[0] = 'H' // must not affect s
	if s.String() != "hello" {
		t.Errorf("String() = %q, want %q (mutation of source leaked in)", s.String(), "hello")
	}
}

func TestLenAndValid(t *testing.T) {
	h := storage.NewDefaultHandle()
	s := jsonstring.New(h, "héllo")
	if s.Len() != len("héllo") {
		t.Errorf("Len() = %d, want %d", s.Len(), len("héllo"))
	}
	if !s.Valid() {
		t.Errorf("Valid() = false for well-formed UTF-8")
	}
}

func TestInvalidUTF8(t *testing.T) {
	h := storage.NewDefaultHandle()
	s := jsonstring.NewBytes(h, []byte{0xff, 0xfe})
	if s.Valid() {
		t.Errorf("Valid() = true for malformed bytes")
	}
}

func TestEqualIndependentOfHandle(t *testing.T) {
	a := jsonstring.New(storage.NewDefaultHandle(), "same")
	b := jsonstring.New(storage.NewHandle(storage.NewPoolResource()), "same")
	if !a.Equal(b) {
		t.Errorf("Equal() should ignore storage handle")
	}
	c := jsonstring.New(storage.NewDefaultHandle(), "different")
	if a.Equal(c) {
		t.Errorf("Equal() should compare bytes")
	}
}

func TestRebind(t *testing.T) {
	h1 := storage.NewDefaultHandle()
	h2 := storage.NewHandle(storage.NewPoolResource())
	defer h2.Release()

	s := jsonstring.New(h1, "rebind me")
	r := s.Rebind(h2)
	if !r.Handle().Equal(h2) {
		t.Errorf("Rebind did not switch handle")
	}
	if r.String() != "rebind me" {
		t.Errorf("Rebind changed content: %q", r.String())
	}
}
