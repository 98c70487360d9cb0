package traverse_test

import (
	"testing"

	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/traverse"
	"github.com/kcenon/jsonvalue/value"
)

func drain(t *testing.T, root value.Value) []traverse.Record {
	t.Helper()
	it := traverse.New(root)
	var recs []traverse.Record
	for !it.Done() {
		recs = append(recs, it.Next())
	}
	return recs
}

func TestScalarRootHasNoEndRecord(t *testing.T) {
	recs := drain(t, value.Int64(7))
	if len(recs) != 1 {
		t.Fatalf("recs = %v, want exactly one record for a scalar root", recs)
	}
	if recs[0].End || !recs[0].Last || recs[0].Depth != 0 {
		t.Errorf("recs[0] = %+v, want a single top-level non-End Last record", recs[0])
	}
}

func TestEmptyArrayProducesBeginAndEndOnly(t *testing.T) {
	h := storage.NewDefaultHandle()
	arr := value.NewArrayValue(h)
	recs := drain(t, arr)
	if len(recs) != 2 {
		t.Fatalf("recs = %v, want begin+end for an empty array", recs)
	}
	if recs[0].End || recs[0].Value.Kind() != value.KindArray {
		t.Errorf("recs[0] = %+v, want a begin record for the array", recs[0])
	}
	if !recs[1].End {
		t.Errorf("recs[1] = %+v, want the closing record", recs[1])
	}
}

func TestEmptyObjectProducesBeginAndEndOnly(t *testing.T) {
	h := storage.NewDefaultHandle()
	obj := value.NewObjectValue(h)
	recs := drain(t, obj)
	if len(recs) != 2 || !recs[1].End {
		t.Fatalf("recs = %v, want begin+end for an empty object", recs)
	}
}

func TestNestedArrayDepthsAndLastFlags(t *testing.T) {
	h := storage.NewDefaultHandle()
	root := value.NewArrayValue(h)
	root.Append(value.Int64(1))
	inner := value.NewArrayValue(h)
	inner.Append(value.Int64(2))
	root.Append(inner)

	recs := drain(t, root)
	// begin root(d0) , elem1(d1,last=false), begin inner(d1,last=true),
	// elem2(d2,last=true), end inner(d1,last=true), end root(d0,last=true)
	if len(recs) != 6 {
		t.Fatalf("recs = %+v, want 6 records", recs)
	}
	if recs[1].Depth != 1 || recs[1].Last {
		t.Errorf("recs[1] (scalar elem) = %+v", recs[1])
	}
	if recs[2].Depth != 1 || !recs[2].Last || recs[2].End {
		t.Errorf("recs[2] (inner begin) = %+v", recs[2])
	}
	if recs[3].Depth != 2 || !recs[3].Last {
		t.Errorf("recs[3] (elem2) = %+v", recs[3])
	}
	if !recs[4].End || recs[4].Depth != 1 {
		t.Errorf("recs[4] (inner end) = %+v", recs[4])
	}
	if !recs[5].End || recs[5].Depth != 0 {
		t.Errorf("recs[5] (root end) = %+v", recs[5])
	}
}

func TestObjectEntriesCarryKeysInInsertionOrder(t *testing.T) {
	h := storage.NewDefaultHandle()
	obj := value.NewObjectValue(h)
	obj.Set("b", value.Int64(2))
	obj.Set("a", value.Int64(1))

	recs := drain(t, obj)
	// begin obj, b, a, end obj
	if len(recs) != 4 {
		t.Fatalf("recs = %+v", recs)
	}
	if recs[1].Key != "b" || recs[2].Key != "a" {
		t.Errorf("keys out of insertion order: recs[1].Key=%q recs[2].Key=%q", recs[1].Key, recs[2].Key)
	}
	if !recs[2].Last {
		t.Errorf("last object entry should have Last=true: %+v", recs[2])
	}
	if !recs[3].End {
		t.Errorf("recs[3] should be the closing record: %+v", recs[3])
	}
}

func TestLargeArrayForcesStackSpill(t *testing.T) {
	// Deep enough nesting to exceed the iterator's inline stack capacity
	// and exercise the spill-to-heap path.
	h := storage.NewDefaultHandle()
	var root value.Value
	leaf := value.Int64(1)
	root = leaf
	for i := 0; i < 80; i++ {
		wrap := value.NewArrayValue(h)
		wrap.Append(root)
		root = wrap
	}
	recs := drain(t, root)
	// 80 begin records + 1 leaf + 80 end records
	if len(recs) != 161 {
		t.Fatalf("len(recs) = %d, want 161", len(recs))
	}
	maxDepth := 0
	for _, r := range recs {
		if r.Depth > maxDepth {
			maxDepth = r.Depth
		}
	}
	if maxDepth != 80 {
		t.Errorf("maxDepth = %d, want 80", maxDepth)
	}
}
