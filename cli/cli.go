package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gitver/cli/cmd"
	"github.com/ardnew/gitver/pkg"
	"github.com/ardnew/gitver/version"
)

// CLI is the top-level command-line interface for gitver.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	cmd.Target `embed:""`

	Write    cmd.Write    `cmd:"" default:"1" help:"Write the version file if it changed (default)."`
	Describe cmd.Describe `cmd:""             help:"Print the git description of the repository."`
	Render   cmd.Render   `cmd:""             help:"Print the version file content without writing it."`
	Check    cmd.Check    `cmd:""             help:"Fail if the version file is missing or stale."`
	Init     cmd.Init     `cmd:""             help:"Initialize configuration file."`
	Version  cmd.Version  `cmd:""             help:"Print the gitver version."`
}

// Run executes the gitver CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		"langEnum":           strings.Join(version.Langs(), ","),
		"langDefault":        string(version.DefaultLang),
		"packageDefault":     version.DefaultPackage,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(envFirst(kong.JSON), configFilePath+".json"),
		kong.Configuration(envFirst(loadYAML), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ktx.BindTo(ctx, (*context.Context)(nil))

	return ktx.Run(&cli.Target)
}
