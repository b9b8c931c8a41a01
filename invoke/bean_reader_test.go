package invoke_test

import (
	"reflect"
	"testing"

	"github.com/klojang-go/path/invoke"
)

type Address struct {
	street string
	city   string
}

func (a Address) GetStreet() string { return a.street }
func (a Address) GetCity() string   { return a.city }
func (a *Address) SetStreet(s string) { a.street = s }
func (a *Address) SetCity(c string)   { a.city = c }

type Plain struct {
	Name string
	Age  int
}

func TestBeanReaderMethodBased(t *testing.T) {
	r := invoke.NewBeanReader(reflect.TypeOf(Address{}), invoke.Include)
	a := Address{street: "Main St", city: "Springfield"}
	v, err := r.Read(a, "street")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != "Main St" {
		t.Fatalf("got %v", v)
	}
	if !r.CanRead("city") || r.CanRead("zip") {
		t.Fatalf("CanRead mismatch")
	}
}

func TestBeanReaderFieldFallback(t *testing.T) {
	r := invoke.NewBeanReader(reflect.TypeOf(Plain{}), invoke.Include)
	p := Plain{Name: "Ada", Age: 30}
	v, err := r.Read(p, "Name")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != "Ada" {
		t.Fatalf("got %v", v)
	}
	if _, err := r.Read(p, "Missing"); err == nil {
		t.Fatalf("expected NoSuchPropertyError")
	}
}

func TestBeanWriterCopyAndEnrich(t *testing.T) {
	w := invoke.NewBeanWriter(reflect.TypeOf(&Address{}), invoke.Include)
	src := &Address{street: "Elm St", city: "Shelbyville"}
	dst := &Address{city: "Ogdenville"}
	if err := w.Enrich(src, dst); err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if dst.street != "Elm St" {
		t.Fatalf("enrich should have filled empty street, got %q", dst.street)
	}
	if dst.city != "Ogdenville" {
		t.Fatalf("enrich must not overwrite non-zero city, got %q", dst.city)
	}

	dst2 := &Address{}
	if err := w.Copy(src, dst2); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if dst2.street != "Elm St" || dst2.city != "Shelbyville" {
		t.Fatalf("copy mismatch: %+v", dst2)
	}
}

func TestBuilderReflectionFree(t *testing.T) {
	rb := invoke.NewBeanReaderBuilder(reflect.TypeOf(Address{})).WithGetter("street", "GetStreet")
	r := rb.Build()
	v, err := r.Read(Address{street: "Oak Ave"}, "street")
	if err != nil || v != "Oak Ave" {
		t.Fatalf("Read via builder failed: %v %v", v, err)
	}

	wb := invoke.NewBeanWriterBuilder(reflect.TypeOf(&Address{})).WithSetter("city", "SetCity")
	w := wb.Build()
	a := &Address{}
	if err := w.Write(a, "city", "Capital City"); err != nil {
		t.Fatalf("Write via builder failed: %v", err)
	}
	if a.city != "Capital City" {
		t.Fatalf("got %q", a.city)
	}
}
