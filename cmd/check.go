package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	protocol "github.com/gluax-lang/lsp"

	"github.com/math4tots-misc/slumber/frontend/common"
	"github.com/math4tots-misc/slumber/frontend/project"
)

type CheckCmd struct {
	Path     string `help:"Path to the project directory." short:"p" default:"."`
	JSON     bool   `help:"Print diagnostics as JSON." name:"json"`
	FailFast bool   `help:"Stop at the first error."`
}

func (c *CheckCmd) Run(g *Globals) error {
	logger := g.logger()
	p, err := project.Load(context.Background(), c.Path, logger)
	if err != nil {
		return err
	}

	errs := c.check(p)
	if c.JSON {
		if err := writeJSONDiagnostics(os.Stdout, p, errs); err != nil {
			return err
		}
	} else {
		for _, err := range errs {
			printError(stderr, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d error(s) in %s", len(errs), p.Dir)
	}
	if !c.JSON {
		okHeader.Fprint(stderr, "ok")
		fmt.Fprintf(stderr, " %s (%d files)\n", p.Config.Name, len(p.Files))
	}
	return nil
}

func (c *CheckCmd) check(p *project.Project) []error {
	if !c.FailFast {
		_, errs := p.Check()
		return errs
	}
	if len(p.ParseErrors) > 0 {
		return p.ParseErrors[:1]
	}
	if _, err := p.Annotate(context.Background()); err != nil {
		return []error{err}
	}
	return nil
}

type jsonDiagnostic struct {
	URI        string               `json:"uri"`
	Diagnostic *protocol.Diagnostic `json:"diagnostic"`
}

// writeJSONDiagnostics writes one array of diagnostics. Project files are
// identified by their file:// URI, std files by their std: URI.
func writeJSONDiagnostics(w io.Writer, p *project.Project, errs []error) error {
	out := make([]jsonDiagnostic, 0, len(errs))
	for _, err := range errs {
		var ce *common.CompileError
		if !errors.As(err, &ce) {
			ce = common.NewError(0, err.Error(), common.SpanDefault())
		}
		uri := ce.Span.URI()
		if f := p.FileByURI(uri); f != nil {
			uri = f.URI()
		}
		out = append(out, jsonDiagnostic{URI: uri, Diagnostic: ce.Diagnostic()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
