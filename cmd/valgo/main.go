package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/stdschema/valgo"
	"github.com/stdschema/valgo/i18n"
	"github.com/stdschema/valgo/jsonschema"
	"github.com/stdschema/valgo/registry"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "valgo CLI\n\nUsage:\n  valgo validate -kind KIND [-array] [-allow-nan] [-lang en|ja]   < value.json\n  valgo schema   -kind KIND -target TARGET [-array] [-yaml]\n  valgo check    -schema FILE [-name NAME]                        < value.json\n\nKinds:   string bool i32 i64 u32 u64 f32 f64\nTargets: draft-2020-12 draft-07 openapi-3.0\n\nExit codes: 0 valid, 1 invalid, 2 usage or hard error.")
}

// validateCmd reads one JSON value from stdin and validates it against a
// primitive kind, or an array of that kind with -array. The result is printed
// in its wire shape: {"value": ...} or {"issues": [...]}.
func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var kindName string
	var asArray bool
	var allowNaN bool
	var lang string
	fs.StringVar(&kindName, "kind", "", "primitive kind to validate against")
	fs.BoolVar(&asArray, "array", false, "validate an array of the kind")
	fs.BoolVar(&allowNaN, "allow-nan", false, "accept NaN and infinities for float kinds")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if kindName == "" {
		fs.Usage()
		os.Exit(2)
	}
	kind, ok := valgo.ParseKind(kindName)
	if !ok {
		fatalf("unknown kind %q", kindName)
	}
	i18n.SetLanguage(lang)

	v, err := readValue(os.Stdin)
	if err != nil {
		fatalf("reading input: %v", err)
	}

	if err := valgo.Init(context.Background(), valgo.Options{AllowNaN: allowNaN}); err != nil {
		fatalf("init: %v", err)
	}
	e, err := valgo.Handle()
	if err != nil {
		fatalf("handle: %v", err)
	}

	var res valgo.Result[any]
	if asArray {
		iv, err := e.ItemValidatorFor(kind)
		if err != nil {
			fatalf("validate: %v", err)
		}
		r := e.ValidateArray(v, iv)
		if val, ok := r.Value(); ok {
			res = valgo.OK[any](val)
		} else {
			res = valgo.Fail[any](r.Issues()...)
		}
	} else {
		res, err = e.Validate(kind, v)
		if err != nil {
			fatalf("validate: %v", err)
		}
	}

	printJSON(res)
	if res.IsFailure() {
		os.Exit(1)
	}
}

// schemaCmd prints the JSON Schema document for a kind under a target.
func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var kindName string
	var targetName string
	var asArray bool
	var asYAML bool
	fs.StringVar(&kindName, "kind", "", "primitive kind to describe")
	fs.StringVar(&targetName, "target", "draft-2020-12", "schema dialect")
	fs.BoolVar(&asArray, "array", false, "wrap the kind under an array document")
	fs.BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	_ = fs.Parse(args)
	if kindName == "" {
		fs.Usage()
		os.Exit(2)
	}
	kind, ok := valgo.ParseKind(kindName)
	if !ok {
		fatalf("unknown kind %q", kindName)
	}
	target, err := jsonschema.ParseTarget(targetName)
	if err != nil {
		fatalf("%v", err)
	}

	if err := valgo.Init(context.Background(), valgo.Options{}); err != nil {
		fatalf("init: %v", err)
	}
	e, err := valgo.Handle()
	if err != nil {
		fatalf("handle: %v", err)
	}

	doc, err := e.JSONSchema(kind, target)
	if err != nil {
		fatalf("schema: %v", err)
	}
	if asArray {
		doc, err = e.ArrayJSONSchema(doc, target)
		if err != nil {
			fatalf("schema: %v", err)
		}
	}

	if asYAML {
		b, err := yaml.Marshal(doc)
		if err != nil {
			fatalf("encode: %v", err)
		}
		os.Stdout.Write(b)
		return
	}
	printJSON(doc)
}

// checkCmd registers a schema document from a file (JSON or YAML, by
// extension) and validates one JSON value from stdin against it.
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var name string
	fs.StringVar(&schemaPath, "schema", "", "path to a JSON or YAML schema document")
	fs.StringVar(&name, "name", "schema", "registration name")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	b, err := os.ReadFile(schemaPath)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	reg := registry.New()
	switch strings.ToLower(filepath.Ext(schemaPath)) {
	case ".yaml", ".yml":
		err = reg.RegisterYAML(name, b)
	default:
		err = reg.RegisterJSON(name, b)
	}
	if err != nil {
		fatalf("%v", err)
	}

	v, err := readValue(os.Stdin)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	res, err := reg.Validate(name, v)
	if err != nil {
		fatalf("%v", err)
	}
	printJSON(res)
	if res.IsFailure() {
		os.Exit(1)
	}
}

// readValue decodes exactly one JSON value. Numbers decode as json.Number so
// 64-bit integers survive without float rounding.
func readValue(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after value")
	}
	return v, nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	os.Stdout.Write(append(b, '\n'))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
