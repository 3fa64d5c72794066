package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/math4tots-misc/slumber/common"
	"github.com/math4tots-misc/slumber/frontend/ast"
	fcommon "github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/parser"
)

type ParseCmd struct {
	File  string `arg:"" help:"Source file to parse." type:"existingfile"`
	Dump  bool   `help:"Dump the whole syntax tree."`
	Depth int    `help:"Maximum depth of the dump, 0 for no limit." default:"8"`
}

func (c *ParseCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	src := fcommon.NewSource(common.FilePathClean(c.File), string(data))
	mod, err := parser.Parse(src)
	if err != nil {
		printError(stderr, err)
		return fmt.Errorf("failed to parse %s", c.File)
	}
	g.logger().Debug("parsed", "file", c.File, "classes", len(mod.Classes))

	if c.Dump {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                c.Depth,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		cfg.Fdump(os.Stdout, mod)
		return nil
	}
	writeModule(os.Stdout, mod)
	return nil
}

// writeModule prints the declarations of mod, one class per paragraph.
func writeModule(w io.Writer, mod *ast.Module) {
	fmt.Fprintf(w, "package %s\n", mod.Package)
	for _, cls := range mod.Classes {
		kind := "class"
		switch {
		case cls.IsInterface:
			kind = "interface"
		case cls.IsNative:
			kind = "native class"
		}
		fmt.Fprintf(w, "\n%s %s extends %s", kind, cls.QualifiedTypename(), cls.BaseTypename())
		if len(cls.Interfaces) > 0 {
			fmt.Fprintf(w, " implements %s", strings.Join(cls.Interfaces, ", "))
		}
		fmt.Fprintln(w)
		for _, m := range cls.Members {
			fmt.Fprintf(w, "  %s%s %s\n", static(m.IsStatic), m.Type, m.Name)
		}
		for _, m := range cls.Methods {
			fmt.Fprintf(w, "  %s%s %s(%s)\n", static(m.IsStatic), m.Returns, m.Name, strings.Join(m.ParamTypes(), ", "))
		}
	}
}

func static(b bool) string {
	if b {
		return "static "
	}
	return ""
}
