// Command opath reads or patches a value inside a JSON or YAML document
// using a path string.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	goccyjson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	opath "github.com/klojang-go/path"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "get":
		getCmd(os.Args[2:])
	case "set":
		setCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "opath CLI\n\nUsage:\n  opath get -file doc.json -path foo.bar.2\n  opath set -file doc.yaml -path foo.bar -value '\"nor\"' -format yaml -o out.yaml\n\nNotes:\n  - -format defaults to the file extension (.json/.yaml/.yml); override with -format json|yaml.\n  - -value for set is parsed as JSON, so strings need explicit quotes.")
}

func getCmd(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var file, path, format string
	fs.StringVar(&file, "file", "", "input document (JSON or YAML)")
	fs.StringVar(&path, "path", "", "path to read")
	fs.StringVar(&format, "format", "", "json|yaml (defaults to file extension)")
	_ = fs.Parse(args)
	if file == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}

	root := loadDocument(file, format)
	w := opath.NewWalker(false, nil)
	v, err := w.Read(root, opath.From(path))
	if err != nil {
		fatalf("read: %v", err)
	}
	out, err := goccyjson.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func setCmd(args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	var file, path, value, format, out string
	fs.StringVar(&file, "file", "", "input document (JSON or YAML)")
	fs.StringVar(&path, "path", "", "path to write")
	fs.StringVar(&value, "value", "", "new value, parsed as JSON")
	fs.StringVar(&format, "format", "", "json|yaml (defaults to file extension)")
	fs.StringVar(&out, "o", "", "output filename (defaults to stdout)")
	_ = fs.Parse(args)
	if file == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}

	root := loadDocument(file, format)
	var v any
	if value != "" {
		if err := goccyjson.Unmarshal([]byte(value), &v); err != nil {
			fatalf("parse -value as JSON: %v", err)
		}
	}
	w := opath.NewWalker(false, nil)
	ok, err := w.Write(root, opath.From(path), v)
	if err != nil {
		fatalf("write: %v", err)
	}
	if !ok {
		fatalf("write did not apply")
	}

	data := encodeDocument(root, resolveFormat(file, format))
	if out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func resolveFormat(file, format string) string {
	if format != "" {
		return format
	}
	switch {
	case strings.HasSuffix(file, ".yaml"), strings.HasSuffix(file, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}

func loadDocument(file, format string) any {
	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("reading %s: %v", file, err)
	}
	var root any
	switch resolveFormat(file, format) {
	case "yaml":
		if err := yaml.Unmarshal(data, &root); err != nil {
			fatalf("parsing %s as YAML: %v", file, err)
		}
		root = normalizeYAML(root)
	default:
		if err := goccyjson.Unmarshal(data, &root); err != nil {
			fatalf("parsing %s as JSON: %v", file, err)
		}
	}
	return root
}

// normalizeYAML converts yaml.v3's map[string]interface{} decoding target
// into the same map[string]any shape goccy/go-json produces, so the
// traversal engine classifies both sources identically.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeYAML(vv)
		}
		return t
	case []any:
		for i, vv := range t {
			t[i] = normalizeYAML(vv)
		}
		return t
	default:
		return v
	}
}

func encodeDocument(root any, format string) []byte {
	var data []byte
	var err error
	if format == "yaml" {
		data, err = yaml.Marshal(root)
	} else {
		data, err = goccyjson.MarshalIndent(root, "", "  ")
	}
	if err != nil {
		fatalf("encode document: %v", err)
	}
	return data
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
