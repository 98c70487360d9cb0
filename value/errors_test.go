package value_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/value"
)

func TestErrorConditionGrouping(t *testing.T) {
	err := value.NewParseError(value.ErrSyntax, "")
	ve, ok := err.(*value.Error)
	if !ok {
		t.Fatalf("NewParseError did not return *value.Error: %T", err)
	}
	if ve.Condition() != value.ConditionParseError {
		t.Errorf("Condition() = %v, want ConditionParseError", ve.Condition())
	}
	if ve.Code != value.ErrSyntax {
		t.Errorf("Code = %v, want ErrSyntax", ve.Code)
	}
}

func TestErrorMessageIncludesExtraContext(t *testing.T) {
	err := value.NewParseError(value.ErrKeyNotFound, "missing")
	if got := err.Error(); got == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestKindString(t *testing.T) {
	cases := map[value.Kind]string{
		value.KindNull:   "null",
		value.KindBool:   "bool",
		value.KindNumber: "number",
		value.KindString: "string",
		value.KindArray:  "array",
		value.KindObject: "object",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
