package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check server health",
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	flags := ParseGlobalFlags(c)
	if err := newClient(c).Health(ctx); err != nil {
		PrintError("health check failed: %v", err)
		return fmt.Errorf("server unhealthy")
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Value(map[string]string{
		"server": flags.Server,
		"status": "ok",
	})
}
