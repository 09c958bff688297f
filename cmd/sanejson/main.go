// Command sanejson inspects and edits JSON documents through typed,
// path-addressed operations. It is a thin caller around the sane
// library: all parsing and printing happens here, the library never
// performs I/O.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sanedata/sane"
)

// CLI defines the command-line interface.
var CLI struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`

	Get      GetCmd      `cmd:"" help:"Read the value at a path."`
	Set      SetCmd      `cmd:"" help:"Write a value at a path and print the updated document."`
	Delete   DeleteCmd   `cmd:"" help:"Delete the value at a path and print the updated document."`
	Contains ContainsCmd `cmd:"" help:"Report whether a path (optionally with a type) resolves."`
}

type GetCmd struct {
	Path string `arg:"" help:"Dotted path, e.g. user.emails.0"`
	Type string `help:"Type to enforce: a tag (string,int,float,bool,null,object,array,number), [tag], or {str:tag}." short:"t"`
}

type SetCmd struct {
	Path  string `arg:"" help:"Dotted path, e.g. user.emails.0"`
	Value string `arg:"" help:"New value, as a JSON literal."`
	Type  string `help:"Type the new value must satisfy." short:"t"`
}

type DeleteCmd struct {
	Path string `arg:"" help:"Dotted path, e.g. user.emails.0"`
}

type ContainsCmd struct {
	Path string `arg:"" help:"Dotted path, e.g. user.emails.0"`
	Type string `help:"Type the value must satisfy." short:"t"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sanejson"),
		kong.Description("Typed, path-addressed access to JSON documents."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRoot reads the input document and wraps it. Freshly decoded JSON
// always conforms to the value model, so the unchecked wrap applies.
func loadRoot() (any, error) {
	var r io.Reader = os.Stdin
	if CLI.Input != "" {
		f, err := os.Open(CLI.Input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var raw any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	root, err := sane.WrapUnchecked(raw)
	if err != nil {
		return nil, fmt.Errorf("document root must be an object or array: %w", err)
	}
	return root, nil
}

// splitPath turns the CLI's dotted convenience syntax into the segment
// sequence the library accepts. All-digit segments (with an optional
// leading minus) become indexes.
func splitPath(s string) ([]any, error) {
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ".")
	path := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			path[i] = n
		} else {
			path[i] = p
		}
	}
	return path, nil
}

var tagTypes = map[string]sane.Type{
	"null":   sane.Null,
	"bool":   sane.Bool,
	"int":    sane.Int,
	"float":  sane.Float,
	"string": sane.String,
	"object": sane.Object,
	"array":  sane.Array,
	"number": sane.Number,
}

// parseType resolves the CLI type syntax: a tag name, "[tag]" for a
// homogeneous array, or "{str:tag}" for a homogeneous object.
func parseType(s string) (sane.Type, error) {
	s = strings.TrimSpace(s)
	if t, ok := tagTypes[s]; ok {
		return t, nil
	}
	if inner, ok := strings.CutPrefix(s, "["); ok {
		if inner, ok = strings.CutSuffix(inner, "]"); ok {
			if t, ok := tagTypes[strings.TrimSpace(inner)]; ok {
				return sane.ArrayOf(t), nil
			}
		}
	}
	if inner, ok := strings.CutPrefix(s, "{"); ok {
		if inner, ok = strings.CutSuffix(inner, "}"); ok {
			key, val, found := strings.Cut(inner, ":")
			if found && strings.TrimSpace(key) == "str" {
				if t, ok := tagTypes[strings.TrimSpace(val)]; ok {
					return sane.ObjectOf(t), nil
				}
			}
		}
	}
	return sane.Type{}, fmt.Errorf("unrecognized type %q", s)
}

func optionalType(s string) ([]sane.Type, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseType(s)
	if err != nil {
		return nil, err
	}
	return []sane.Type{t}, nil
}

func printJSON(v any) error {
	switch w := v.(type) {
	case *sane.Dict:
		v = w.Unwrap()
	case *sane.List:
		v = w.Unwrap()
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// rootGet dispatches a path read to whichever façade kind the root is.
func rootGet(root any, path []any, typ []sane.Type) (any, error) {
	switch w := root.(type) {
	case *sane.Dict:
		return w.Get(path, typ...)
	case *sane.List:
		return w.Get(path, typ...)
	}
	return nil, fmt.Errorf("unexpected root %T", root)
}

func (c *GetCmd) Run() error {
	root, err := loadRoot()
	if err != nil {
		return err
	}
	path, err := splitPath(c.Path)
	if err != nil {
		return err
	}
	typ, err := optionalType(c.Type)
	if err != nil {
		return err
	}
	v, err := rootGet(root, path, typ)
	if err != nil {
		return err
	}
	return printJSON(v)
}

func (c *SetCmd) Run() error {
	root, err := loadRoot()
	if err != nil {
		return err
	}
	path, err := splitPath(c.Path)
	if err != nil {
		return err
	}
	typ, err := optionalType(c.Type)
	if err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal([]byte(c.Value), &value); err != nil {
		return fmt.Errorf("value must be a JSON literal: %w", err)
	}
	switch w := root.(type) {
	case *sane.Dict:
		err = w.Set(path, value, typ...)
	case *sane.List:
		err = w.Set(path, value, typ...)
	}
	if err != nil {
		return err
	}
	return printJSON(root)
}

func (c *DeleteCmd) Run() error {
	root, err := loadRoot()
	if err != nil {
		return err
	}
	path, err := splitPath(c.Path)
	if err != nil {
		return err
	}
	switch w := root.(type) {
	case *sane.Dict:
		err = w.Delete(path)
	case *sane.List:
		err = w.Delete(path)
	}
	if err != nil {
		return err
	}
	return printJSON(root)
}

func (c *ContainsCmd) Run() error {
	root, err := loadRoot()
	if err != nil {
		return err
	}
	path, err := splitPath(c.Path)
	if err != nil {
		return err
	}
	typ, err := optionalType(c.Type)
	if err != nil {
		return err
	}
	var found bool
	switch w := root.(type) {
	case *sane.Dict:
		found = w.Contains(path, typ...)
	case *sane.List:
		found = w.Contains(path, typ...)
	}
	fmt.Println(found)
	return nil
}
