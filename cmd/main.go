package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bbc"),
		kong.Description("bb compiler front end"),
		kong.UsageOnError(),
	)
	cli.Globals.setup()
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

type Globals struct {
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"warn"`
	NoColor  bool   `help:"Disable colored output."`
}

type CLI struct {
	Globals

	Check   CheckCmd   `cmd:"" help:"Parse and annotate the project, reporting errors."`
	Parse   ParseCmd   `cmd:"" help:"Parse one file and print its declarations."`
	Types   TypesCmd   `cmd:"" help:"Print the flattened type table of the project."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
