package path_test

import (
	"errors"
	"testing"

	opath "github.com/klojang-go/path"
)

func TestWriteIntoSliceElement(t *testing.T) {
	root := map[string]any{
		"foo": map[string]any{
			"bar": map[string]any{
				"bozo": []any{"to", "be", "or", "not", "to", "be"},
			},
		},
	}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("foo.bar.bozo.2"), "nor")
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	bozo := root["foo"].(map[string]any)["bar"].(map[string]any)["bozo"].([]any)
	if bozo[2] != "nor" {
		t.Fatalf("bozo[2] = %v, want nor", bozo[2])
	}
}

func TestWriteIntoIntArrayElement(t *testing.T) {
	type holder struct {
		Bozo *[6]int
	}
	arr := [6]int{0, 1, 2, 3, 4, 5}
	root := map[string]any{
		"foo": map[string]any{
			"bar": &holder{Bozo: &arr},
		},
	}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("foo.bar.Bozo.2"), 42)
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	if arr[2] != 42 {
		t.Fatalf("arr[2] = %d, want 42", arr[2])
	}
}

func TestWriteAgainstNullDeadEndsTerminalValue(t *testing.T) {
	root := map[string]any{
		"foo": map[string]any{
			"bar": map[string]any{
				"bozo": nil,
			},
		},
	}
	w := opath.NewWalker(false, nil)
	_, err := w.Write(root, opath.From("foo.bar.bozo.teapot"), 42)
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeTerminalValue {
		t.Fatalf("code = %v, want TERMINAL_VALUE", perr.Code)
	}
}

func TestWriteAgainstNullDeadEndSuppressed(t *testing.T) {
	root := map[string]any{"foo": nil}
	w := opath.NewWalker(true, nil)
	ok, err := w.Write(root, opath.From("foo.bar"), 42)
	if err != nil {
		t.Fatalf("suppress mode must not return an error: %v", err)
	}
	if ok {
		t.Fatalf("suppress mode write should report false on a dead end")
	}
}

func TestReadMissingKeyDeadEnds(t *testing.T) {
	root := map[string]any{"foo": 1}
	w := opath.NewWalker(false, nil)
	_, err := w.Read(root, opath.From("bar"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr := err.(*opath.PathError)
	if perr.Code != opath.CodeNoSuchKey {
		t.Fatalf("code = %v, want NO_SUCH_KEY", perr.Code)
	}
}

func TestReadThroughNestedMaps(t *testing.T) {
	root := map[string]any{
		"foo": map[string]any{"bar": 7},
	}
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.From("foo.bar"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 7 {
		t.Fatalf("v = %v, want 7", v)
	}
}

func TestReadEmptyPathReturnsRoot(t *testing.T) {
	root := map[string]any{"foo": 1}
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.Empty())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["foo"] != 1 {
		t.Fatalf("expected root map back, got %v", v)
	}
}

func TestWriteEmptyPathIsDeadEnd(t *testing.T) {
	root := map[string]any{"foo": 1}
	w := opath.NewWalker(false, nil)
	_, err := w.Write(root, opath.Empty(), 2)
	if err == nil {
		t.Fatalf("expected an error writing to an empty path")
	}
}

func TestReadRecordViaFieldFallback(t *testing.T) {
	type Address struct{ City string }
	type Person struct{ Addr Address }
	root := Person{Addr: Address{City: "Springfield"}}
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.From("Addr.City"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != "Springfield" {
		t.Fatalf("v = %v, want Springfield", v)
	}
}

func TestWriteRecordViaSetterMethod(t *testing.T) {
	root := &recordHolder{}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("name"), "Ada")
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	if root.name != "Ada" {
		t.Fatalf("name = %q, want Ada", root.name)
	}
}

type recordHolder struct{ name string }

func (r recordHolder) GetName() string   { return r.name }
func (r *recordHolder) SetName(n string) { r.name = n }

func TestReadPastScalarLeafIsTerminalValue(t *testing.T) {
	root := map[string]any{"foo": map[string]any{"bar": 7}}
	w := opath.NewWalker(false, nil)
	_, err := w.Read(root, opath.From("foo.bar.baz"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeTerminalValue {
		t.Fatalf("code = %v, want TERMINAL_VALUE", perr.Code)
	}
	if !errors.Is(err, opath.ErrTerminalValue) {
		t.Fatalf("errors.Is(err, ErrTerminalValue) = false")
	}
}

func TestWritePastScalarLeafIsTerminalValue(t *testing.T) {
	root := map[string]any{"foo": map[string]any{"bar": 7}}
	w := opath.NewWalker(false, nil)
	_, err := w.Write(root, opath.From("foo.bar.baz"), "x")
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeTerminalValue {
		t.Fatalf("code = %v, want TERMINAL_VALUE", perr.Code)
	}
}

func TestWriteOutOfRangeNonAssignableValueIsTypeMismatch(t *testing.T) {
	type holder struct{ Names *[3]string }
	arr := [3]string{"a", "b", "c"}
	root := map[string]any{"items": &holder{Names: &arr}}
	w := opath.NewWalker(false, nil)
	_, err := w.Write(root, opath.From("items.Names.99"), []int{1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeTypeMismatch {
		t.Fatalf("code = %v, want TYPE_MISMATCH (type check must precede bounds check), got %v", opath.CodeTypeMismatch, perr.Code)
	}
}

func TestWriteOutOfRangeNonAssignableValueIsTypeMismatchSlice(t *testing.T) {
	arr := []string{"a", "b", "c"}
	root := map[string]any{"items": arr}
	w := opath.NewWalker(false, nil)
	_, err := w.Write(root, opath.From("items.99"), []int{1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeTypeMismatch {
		t.Fatalf("code = %v, want TYPE_MISMATCH (type check must precede bounds check), got %v", opath.CodeTypeMismatch, perr.Code)
	}
}

func TestWriteIntoPrimitiveArrayNestedInsidePlainMaps(t *testing.T) {
	root := map[string]any{
		"foo": map[string]any{
			"bar": map[string]any{
				"bozo": [6]int{0, 1, 2, 3, 4, 5},
			},
		},
	}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("foo.bar.bozo.2"), 42)
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	bozo := root["foo"].(map[string]any)["bar"].(map[string]any)["bozo"].([6]int)
	want := [6]int{0, 1, 42, 3, 4, 5}
	if bozo != want {
		t.Fatalf("bozo = %v, want %v", bozo, want)
	}
}

func TestWriteIntoStructNestedInsidePlainMap(t *testing.T) {
	root := map[string]any{
		"foo": map[string]any{
			"bar": recordHolder{name: "before"},
		},
	}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From("foo.bar.name"), "after")
	if err != nil || !ok {
		t.Fatalf("Write failed: ok=%v err=%v", ok, err)
	}
	bar := root["foo"].(map[string]any)["bar"].(recordHolder)
	if bar.GetName() != "after" {
		t.Fatalf("bar.GetName() = %q, want after", bar.GetName())
	}
}

func TestMapWithNonStringPointerKeyDeadEndsCleanly(t *testing.T) {
	one := 1
	root := map[string]any{
		"items": map[*int]string{&one: "x"},
	}
	w := opath.NewWalker(false, nil)
	_, err := w.Read(root, opath.From("items.1"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	perr, ok := err.(*opath.PathError)
	if !ok {
		t.Fatalf("expected *path.PathError, got %T", err)
	}
	if perr.Code != opath.CodeKeyDeserializationFailed {
		t.Fatalf("code = %v, want KEY_DESERIALIZATION_FAILED, got %v", opath.CodeKeyDeserializationFailed, perr.Code)
	}
}
