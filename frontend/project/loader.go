// Package project loads a bb project from disk: its bb.toml, every source
// file below the configured source directories and, optionally, the embedded
// std classes.
package project

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/math4tots-misc/slumber/common"
	"github.com/math4tots-misc/slumber/frontend/ast"
	fcommon "github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/parser"
	"github.com/math4tots-misc/slumber/frontend/sema"
	"github.com/math4tots-misc/slumber/std"
)

// SourceExt is the extension of bb source files.
const SourceExt = ".bb"

type File struct {
	Path   string // absolute
	Source *fcommon.Source
	Module *ast.Module // nil if the file failed to parse
}

// URI is the file:// form of Path.
func (f *File) URI() string {
	return common.FilePathToURI(common.FilePathClean(f.Path))
}

type Project struct {
	Dir         string
	Config      Config
	Files       []*File
	ParseErrors []error // in file order
	logger      *slog.Logger
}

// Load reads the project in dir. Parse errors do not fail the load; they are
// collected in ParseErrors. The returned error is for configuration and I/O
// problems only.
func Load(ctx context.Context, dir string, logger *slog.Logger) (*Project, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	p := &Project{Dir: dir, Config: cfg, logger: logger}

	paths, err := p.scan()
	if err != nil {
		return nil, err
	}
	logger.Debug("scanned sources", "project", cfg.Name, "files", len(paths))

	if err := p.parseAll(ctx, paths); err != nil {
		return nil, err
	}
	return p, nil
}

// scan lists the source files of every configured directory, sorted.
func (p *Project) scan() ([]string, error) {
	var paths []string
	for _, srcDir := range p.Config.Sources {
		root := filepath.Join(p.Dir, srcDir)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

func (p *Project) workers() int {
	if p.Config.Annotate.Workers > 0 {
		return p.Config.Annotate.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p *Project) parseAll(ctx context.Context, paths []string) error {
	files := make([]*File, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			src := fcommon.NewSource(p.rel(path), string(content))
			files[i] = &File{Path: path, Source: src}
			files[i].Module, errs[i] = parser.Parse(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p.Files = files
	for i, err := range errs {
		if err != nil {
			p.logger.Debug("parse failed", "file", files[i].Source.URI, "err", err)
			p.ParseErrors = append(p.ParseErrors, err)
		}
	}
	return nil
}

// rel is path relative to the project directory, with forward slashes.
func (p *Project) rel(path string) string {
	rel, err := filepath.Rel(p.Dir, path)
	if err != nil {
		return common.FilePathClean(path)
	}
	return common.FilePathClean(rel)
}

// FileByURI finds the file whose source has the given URI.
func (p *Project) FileByURI(uri string) *File {
	for _, f := range p.Files {
		if f.Source.URI == uri {
			return f
		}
	}
	return nil
}

// Classes returns the std classes, when enabled, followed by the classes of
// every parsed file in file order.
func (p *Project) Classes() ([]*ast.Class, error) {
	var classes []*ast.Class
	if p.Config.Std {
		stdClasses, err := std.Classes()
		if err != nil {
			return nil, err
		}
		classes = append(classes, stdClasses...)
	}
	for _, f := range p.Files {
		if f.Module != nil {
			classes = append(classes, f.Module.Classes...)
		}
	}
	return classes, nil
}

func (p *Project) TypeData() (sema.TypeData, error) {
	classes, err := p.Classes()
	if err != nil {
		return nil, err
	}
	return sema.ExtractTypeData(classes)
}

// Annotate annotates every class, stopping at the first error. A project
// with parse errors is not annotated; the first parse error is returned.
func (p *Project) Annotate(ctx context.Context) (*sema.Types, error) {
	if len(p.ParseErrors) > 0 {
		return nil, p.ParseErrors[0]
	}
	classes, err := p.Classes()
	if err != nil {
		return nil, err
	}
	types, err := sema.AnnotateParallel(ctx, classes, p.Config.Options(), p.Config.Annotate.Workers)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("annotated", "classes", len(classes), "expressions", types.Len())
	return types, nil
}

// Check reports every parse error and, when there are none, one annotation
// error per failing class.
func (p *Project) Check() (*sema.Types, []error) {
	if len(p.ParseErrors) > 0 {
		return nil, p.ParseErrors
	}
	classes, err := p.Classes()
	if err != nil {
		return nil, []error{err}
	}
	types, errs := sema.Check(classes, p.Config.Options())
	p.logger.Debug("checked", "classes", len(classes), "errors", len(errs))
	return types, errs
}
