package path_test

import (
	"container/list"
	"testing"

	opath "github.com/klojang-go/path"
)

func TestReadThroughListList(t *testing.T) {
	l := list.New()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	root := map[string]any{"items": l}
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.From("items.1"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != "b" {
		t.Fatalf("v = %v, want b", v)
	}
}

func TestWriteThroughListList(t *testing.T) {
	l := list.New()
	l.PushBack("a")
	l.PushBack("b")
	root := map[string]any{"items": l}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("items.1"), "B")
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	if l.Front().Next().Value != "B" {
		t.Fatalf("list element not updated: %v", l.Front().Next().Value)
	}
}

func TestListIndexOutOfBounds(t *testing.T) {
	l := list.New()
	l.PushBack("a")
	root := map[string]any{"items": l}
	w := opath.NewWalker(false, nil)
	_, err := w.Read(root, opath.From("items.5"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr := err.(*opath.PathError)
	if perr.Code != opath.CodeIndexOutOfBounds {
		t.Fatalf("code = %v, want INDEX_OUT_OF_BOUNDS", perr.Code)
	}
}

func TestReadFixedArrayElement(t *testing.T) {
	type holder struct{ Names [3]string }
	root := holder{Names: [3]string{"x", "y", "z"}}
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.From("Names.1"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != "y" {
		t.Fatalf("v = %v, want y", v)
	}
}

func TestIndexExpectedOnNonIndexSegment(t *testing.T) {
	root := []any{1, 2, 3}
	w := opath.NewWalker(false, nil)
	_, err := w.Read(root, opath.From("foo"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr := err.(*opath.PathError)
	if perr.Code != opath.CodeIndexExpected {
		t.Fatalf("code = %v, want INDEX_EXPECTED", perr.Code)
	}
}
