// Package std embeds the bb.lang native classes shipped with the compiler.
package std

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/math4tots-misc/slumber/common"
	"github.com/math4tots-misc/slumber/frontend/ast"
	fcommon "github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/parser"
)

//go:embed bb
var FS embed.FS

// Workspace is the URI prefix of embedded sources.
var Workspace string = "std"

var Files map[string]string = func() map[string]string {
	out := make(map[string]string)

	err := fs.WalkDir(FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil { // propagate unexpected I/O problems
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".bb") {
			return nil
		}
		data, err := FS.ReadFile(p)
		if err != nil {
			return err
		}
		name := common.FilePathClean(strings.TrimPrefix(p, "./"))
		out[name] = string(data)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}()

// Sources returns every embedded file, sorted by name.
func Sources() []*fcommon.Source {
	names := make([]string, 0, len(Files))
	for name := range Files {
		names = append(names, name)
	}
	slices.Sort(names)

	srcs := make([]*fcommon.Source, len(names))
	for i, name := range names {
		srcs[i] = fcommon.NewSource(Workspace+":"+name, Files[name])
	}
	return srcs
}

// Classes parses the embedded sources once. The returned classes are shared
// and must not be modified.
var Classes = sync.OnceValues(func() ([]*ast.Class, error) {
	var classes []*ast.Class
	for _, src := range Sources() {
		mod, err := parser.Parse(src)
		if err != nil {
			return nil, err
		}
		classes = append(classes, mod.Classes...)
	}
	return classes, nil
})
