package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/math4tots-misc/slumber/frontend/lexer"
	"github.com/math4tots-misc/slumber/frontend/project"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run(g *Globals) error {
	if err := scaffold(n.Name); err != nil {
		return err
	}
	g.logger().Info("created project", "dir", n.Name)
	return nil
}

// packageName derives the bb package of a project from its name.
func packageName(name string) (string, error) {
	pkg := strings.ToLower(strings.ReplaceAll(filepath.Base(name), "-", "_"))
	if !lexer.IsValidIdent(pkg) || lexer.IsKeyword(pkg) || lexer.IsPrimitive(pkg) {
		return "", fmt.Errorf("cannot derive a package name from %q", name)
	}
	return pkg, nil
}

func scaffold(dir string) error {
	pkg, err := packageName(dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(dir, project.ConfigFile)); err == nil {
		return fmt.Errorf("%s already exists in %s", project.ConfigFile, dir)
	}
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		return err
	}

	var cfg bytes.Buffer
	if err := project.DefaultConfig(filepath.Base(dir)).Encode(&cfg); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, project.ConfigFile), cfg.Bytes(), 0644); err != nil {
		return err
	}

	source := "package " + pkg + ";\n\n" +
		"class Main {\n" +
		"    \"Entry point.\"\n\n" +
		"    void main() {\n" +
		"        String greeting = \"hello\";\n" +
		"        int n = greeting.size();\n" +
		"    }\n" +
		"}\n"
	return os.WriteFile(filepath.Join(dir, "src", "Main"+project.SourceExt), []byte(source), 0644)
}
