// Command offsets emits the binary layout of the saved register snapshot
// (amd64.StackFrame) for consumption by the trap and context-switch
// assembly, either as a Go assembler header or as a YAML manifest.
//
// Usage:
//
//	offsets [-format header|yaml] [-o file]
//	offsets -check file
//
// With -check, the generated header is compared against file and a unified
// diff is printed if they differ.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/Rih0z/os/kernel/arch/amd64"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

const headerPrefix = "STACKFRAME_"

var errLayoutDrift = errors.New("layout differs from checked-in header")

// Field describes one register slot.
type Field struct {
	Name   string `yaml:"name"`
	Offset uintptr `yaml:"offset"`
	Size   uintptr `yaml:"size"`
}

// Layout describes the binary layout of a struct.
type Layout struct {
	Type   string  `yaml:"type"`
	Size   uintptr `yaml:"size"`
	Fields []Field `yaml:"fields"`
}

func layoutOf(t reflect.Type) Layout {
	l := Layout{
		Type: t.String(),
		Size: t.Size(),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		l.Fields = append(l.Fields, Field{Name: f.Name, Offset: f.Offset, Size: f.Type.Size()})
	}

	return l
}

func (l Layout) header() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tools/offsets; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "// Layout of %s.\n", l.Type)
	fmt.Fprintf(&buf, "#define %sSIZE %d\n", headerPrefix, l.Size)
	for _, f := range l.Fields {
		fmt.Fprintf(&buf, "#define %s%s %d\n", headerPrefix, strings.ToUpper(f.Name), f.Offset)
	}
	return buf.Bytes()
}

func (l Layout) render(format string) ([]byte, error) {
	switch format {
	case "header":
		return l.header(), nil
	case "yaml":
		return yaml.Marshal(l)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// check compares the generated header with the contents of path, writing a
// unified diff to w on mismatch.
func (l Layout) check(path string, w io.Writer) error {
	want, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	got := l.header()
	if bytes.Equal(got, want) {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: path,
		ToFile:   "generated",
		Context:  2,
	})
	if err != nil {
		return err
	}

	io.WriteString(w, diff)
	return errLayoutDrift
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("offsets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "header", "output format: header or yaml")
	out := fs.String("o", "", "write output to this file instead of stdout")
	checkPath := fs.String("check", "", "compare the generated header with this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	l := layoutOf(reflect.TypeOf(amd64.StackFrame{}))
	if l.Size != amd64.Size {
		return fmt.Errorf("%s is %d bytes; expected %d", l.Type, l.Size, amd64.Size)
	}

	if *checkPath != "" {
		return l.check(*checkPath, stdout)
	}

	data, err := l.render(*format)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = stdout.Write(data)
		return err
	}

	return os.WriteFile(*out, data, 0644)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "[offsets] error: %s\n", err.Error())
		}
		os.Exit(1)
	}
}
