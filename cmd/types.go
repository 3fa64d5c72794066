package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/math4tots-misc/slumber/frontend/project"
	"github.com/math4tots-misc/slumber/frontend/sema"
)

type TypesCmd struct {
	Path   string `help:"Path to the project directory." short:"p" default:"."`
	Format string `help:"Output format." enum:"table,yaml" default:"table"`
	Class  string `help:"Only print this qualified typename." short:"c"`
}

func (c *TypesCmd) Run(g *Globals) error {
	p, err := project.Load(context.Background(), c.Path, g.logger())
	if err != nil {
		return err
	}
	if len(p.ParseErrors) > 0 {
		printError(stderr, p.ParseErrors[0])
		return fmt.Errorf("%d parse error(s)", len(p.ParseErrors))
	}
	data, err := p.TypeData()
	if err != nil {
		printError(stderr, err)
		return fmt.Errorf("failed to flatten types")
	}
	if c.Class != "" {
		attrs, ok := data[c.Class]
		if !ok {
			return fmt.Errorf("no such type: %s", c.Class)
		}
		data = sema.TypeData{c.Class: attrs}
	}

	switch c.Format {
	case "yaml":
		return writeTypesYAML(os.Stdout, data)
	default:
		writeTypesTable(os.Stdout, data)
		return nil
	}
}

// describeType renders an attribute as its type or as a signature.
func describeType(info sema.TypeInfo) (kind, typ string) {
	switch t := info.(type) {
	case sema.MethodType:
		return "method", fmt.Sprintf("%s(%s)", t.Returns, strings.Join(t.Params, ", "))
	default:
		return "member", info.String()
	}
}

func writeTypesTable(w io.Writer, data sema.TypeData) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Class", "Attribute", "Kind", "Type"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, cls := range slices.Sorted(maps.Keys(data)) {
		attrs := data[cls]
		if len(attrs) == 0 {
			table.Append([]string{cls, "", "", ""})
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(attrs)) {
			kind, typ := describeType(attrs[name])
			table.Append([]string{cls, name, kind, typ})
		}
	}
	table.Render()
}

type yamlAttr struct {
	Kind string `yaml:"kind"`
	Type string `yaml:"type"`
}

func writeTypesYAML(w io.Writer, data sema.TypeData) error {
	out := make(map[string]map[string]yamlAttr, len(data))
	for cls, attrs := range data {
		m := make(map[string]yamlAttr, len(attrs))
		for name, info := range attrs {
			kind, typ := describeType(info)
			m[name] = yamlAttr{Kind: kind, Type: typ}
		}
		out[cls] = m
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
