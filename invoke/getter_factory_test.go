package invoke_test

import (
	"reflect"
	"testing"

	"github.com/klojang-go/path/invoke"
)

type Counter struct{ n int }

func (c Counter) Value() int { return c.n }

func TestLenientDiscoversNonConventionalMethods(t *testing.T) {
	strict := invoke.Getters(reflect.TypeOf(Counter{}), invoke.Strict, invoke.PublicOnly)
	if len(strict) != 0 {
		t.Fatalf("strict mode should find no getters on Counter, got %v", strict)
	}
	// The registry caches by type alone, so the lenient lookup uses
	// *Counter, whose method set also contains Value.
	lenient := invoke.Getters(reflect.TypeOf(&Counter{}), invoke.Lenient, invoke.PublicOnly)
	if _, ok := lenient["Value"]; !ok {
		t.Fatalf("lenient mode should expose Value as a property, got %v", lenient)
	}
}

func TestRegistryCachesByType(t *testing.T) {
	t1 := invoke.Getters(reflect.TypeOf(Plain{}), invoke.Strict, invoke.PublicOnly)
	t2 := invoke.Getters(reflect.TypeOf(Plain{}), invoke.Strict, invoke.PublicOnly)
	if len(t1) != len(t2) {
		t.Fatalf("expected stable cached result")
	}
	if _, ok := t1["Name"]; !ok {
		t.Fatalf("expected field-based fallback to expose Name")
	}
}
