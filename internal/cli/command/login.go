package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Authenticate and print a bearer token",
		ArgsUsage: "<username>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Password (prompted interactively when omitted)",
			},
		},
		Action: loginAction,
	}
}

func loginAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: todovault-cli login <username>")
	}
	username := c.Args().First()

	password := c.String("password")
	if password == "" {
		read, err := promptPassword(c)
		if err != nil {
			return err
		}
		password = read
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := newClient(c).Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Value(map[string]string{
		"user":  result.User.Username,
		"token": result.Token,
	})
}

// promptPassword reads a password from the terminal without echo. It
// falls back to a visible read when stdin is not a terminal.
func promptPassword(c *cli.Context) (string, error) {
	fmt.Fprint(c.App.ErrWriter, "Password: ")

	if f, ok := c.App.Reader.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.App.ErrWriter)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(data), nil
	}

	var password string
	if _, err := fmt.Fscanln(c.App.Reader, &password); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}
