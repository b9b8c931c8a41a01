package invoke_test

import (
	"reflect"
	"testing"

	"github.com/klojang-go/path/invoke"
)

type Tagged struct {
	Street string `path:"street" json:"roadName"`
	City   string `json:"town"`
	Zip    string
}

func TestFieldFallbackHonorsPathThenJSONTag(t *testing.T) {
	getters := invoke.Getters(reflect.TypeOf(Tagged{}), invoke.Strict, invoke.PublicOnly)
	if _, ok := getters["street"]; !ok {
		t.Fatalf("expected path tag \"street\" to win over json tag \"roadName\": %v", keysOf(getters))
	}
	if _, ok := getters["town"]; !ok {
		t.Fatalf("expected json tag \"town\" to be used for City: %v", keysOf(getters))
	}
	if _, ok := getters["Zip"]; !ok {
		t.Fatalf("expected untagged field to fall back to its Go name: %v", keysOf(getters))
	}
}

func keysOf(m map[string]*invoke.Getter) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
