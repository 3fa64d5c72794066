package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/math4tots-misc/slumber/frontend/common"
)

var (
	stderr = colorable.NewColorableStderr()

	errorHeader = color.New(color.FgRed, color.Bold)
	okHeader    = color.New(color.FgGreen, color.Bold)
)

func (g *Globals) setup() {
	fd := os.Stderr.Fd()
	if g.NoColor || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		color.NoColor = true
	}
}

func (g *Globals) logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// printError writes a compile error as a highlighted header followed by its
// source snippet; other errors are written as they are.
func printError(w io.Writer, err error) {
	var ce *common.CompileError
	if !errors.As(err, &ce) {
		errorHeader.Fprint(w, "error: ")
		fmt.Fprintln(w, err)
		return
	}
	header, snippet, _ := strings.Cut(ce.Pretty(), "\n")
	errorHeader.Fprintln(w, header)
	fmt.Fprint(w, snippet)
	fmt.Fprintln(w)
}
