package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/todovault-go/internal/cli/client"
	"github.com/yndnr/todovault-go/internal/cli/output"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "todovault-cli",
		Usage:   "TodoVault command-line client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			ListCommand(),
			AddCommand(),
			DoneCommand(),
			EditCommand(),
			RemoveCommand(),
			StatusCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "TodoVault server address (e.g., localhost:5000)",
			EnvVars: []string{"TODOVAULT_SERVER"},
			Value:   "localhost:5000",
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "Bearer token obtained from the login command",
			EnvVars: []string{"TODOVAULT_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server string
	Token  string
	Output string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server: c.String("server"),
		Token:  c.String("token"),
		Output: c.String("output"),
	}
}

// newClient creates an API client from the global flags.
func newClient(c *cli.Context) *client.Client {
	flags := ParseGlobalFlags(c)
	return client.New(flags.Server, flags.Token)
}

// newFormatter creates an output formatter from the --output flag.
func newFormatter(c *cli.Context) (*output.Formatter, error) {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(c.App.Writer, format), nil
}

// requireToken fails early when a command needs authentication and no
// token was supplied.
func requireToken(c *cli.Context) error {
	if c.String("token") == "" {
		return fmt.Errorf("no token provided: run 'todovault-cli login' and set TODOVAULT_TOKEN")
	}
	return nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
