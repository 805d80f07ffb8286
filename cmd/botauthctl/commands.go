package main

import (
	"fmt"
	"os"
	"time"

	"botauth/internal/domain/entity"
	"botauth/internal/errors"
	"botauth/internal/infra/auth"
	"botauth/internal/infra/persistence/relational"

	"github.com/urfave/cli/v2"
)

const defaultCallerTokenTTL = 30 * 24 * time.Hour

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:  "botauthctl",
		Usage: "Operate the chat bot's superuser credential",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "Directory containing config.yaml",
				EnvVars: []string{"BOTAUTH_CONFIG_DIR"},
			},
			&cli.StringFlag{
				Name:  "driver",
				Usage: "Override database.driver (postgres or sqlite)",
			},
			&cli.StringFlag{
				Name:  "sqlite-path",
				Usage: "Override database.sqlitePath",
			},
		},
		Before: e.setup,
		After: func(*cli.Context) error {
			return e.close()
		},
		Writer: e.out,
		// main decides the exit code; commands only return errors.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			migrateCmd(e),
			rotateCmd(e),
			statusCmd(e),
			checkCmd(e),
			promoteCmd(e),
			setPasswordCmd(e),
			callerTokenCmd(e),
		},
	}
}

func migrateCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the embedded schema migrations",
		Action: func(c *cli.Context) error {
			db, err := e.database()
			if err != nil {
				return err
			}
			if err := relational.Migrate(c.Context, db, e.cfg.Database.Driver); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Migrations applied (%s)\n", e.cfg.Database.Driver)

			return nil
		},
	}
}

func rotateCmd(e *env) *cli.Command {
	var qrPath string

	return &cli.Command{
		Name:  "rotate",
		Usage: "Generate a new superuser password and print it once",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "qr",
				Usage:       "Also write the password as a QR code PNG to this file",
				Destination: &qrPath,
			},
		},
		Action: func(c *cli.Context) error {
			creds, err := e.credentials(c)
			if err != nil {
				return err
			}

			output, err := creds.CreateOrRotateSuperuserPassword(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "New superuser password: %s\n", output.Password)

			if qrPath == "" {
				return nil
			}

			png, err := e.qrcodes().GeneratePasswordQR(output.Password)
			if err != nil {
				return err
			}
			if err := os.WriteFile(qrPath, png, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", qrPath)
			}
			fmt.Fprintf(e.out, "QR code written to %s\n", qrPath)

			return nil
		},
	}
}

func statusCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show whether a superuser password has been stored",
		Action: func(c *cli.Context) error {
			creds, err := e.credentials(c)
			if err != nil {
				return err
			}

			status, err := creds.SuperuserPasswordStatus(c.Context)
			if err != nil {
				return err
			}

			switch {
			case status.Configured:
				fmt.Fprintf(e.out, "Superuser password: configured (%d config row(s))\n", status.ConfigRows)
			case status.BootstrapEnabled:
				fmt.Fprintln(e.out, "Superuser password: not configured, bootstrap password accepted")
			default:
				fmt.Fprintln(e.out, "Superuser password: not configured, no password accepted until rotate")
			}

			return nil
		},
	}
}

func checkCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check a password against the stored superuser password (read from the terminal or stdin)",
		Action: func(c *cli.Context) error {
			password, err := e.prompt("Superuser password: ")
			if err != nil {
				return err
			}

			creds, err := e.credentials(c)
			if err != nil {
				return err
			}

			valid, err := creds.CheckSuperuserPassword(c.Context, password)
			if err != nil {
				return err
			}
			if !valid {
				return cli.Exit("Password rejected", 2)
			}
			fmt.Fprintln(e.out, "Password accepted")

			return nil
		},
	}
}

func userFlags(userID *int64, firstName *string) []cli.Flag {
	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "user-id",
			Usage:       "Chat platform user id",
			Destination: userID,
			Required:    true,
		},
	}
	if firstName != nil {
		flags = append(flags, &cli.StringFlag{
			Name:        "first-name",
			Usage:       "Display name stored when the user is seen for the first time",
			Destination: firstName,
		})
	}

	return flags
}

func promoteCmd(e *env) *cli.Command {
	var (
		userID    int64
		firstName string
	)

	return &cli.Command{
		Name:  "promote",
		Usage: "Run the superuser login flow for a user (password read from the terminal or stdin)",
		Flags: userFlags(&userID, &firstName),
		Action: func(c *cli.Context) error {
			password, err := e.prompt("Superuser password: ")
			if err != nil {
				return err
			}

			creds, err := e.credentials(c)
			if err != nil {
				return err
			}

			granted, err := creds.UpdateToSuperuserIfPasswordCorrect(c.Context, password, entity.ExternalUser{ID: userID, FirstName: firstName})
			if err != nil {
				return err
			}
			if !granted {
				return cli.Exit(fmt.Sprintf("Password rejected, user %d is not a superuser", userID), 2)
			}
			fmt.Fprintf(e.out, "User %d is now a superuser\n", userID)

			return nil
		},
	}
}

func setPasswordCmd(e *env) *cli.Command {
	var userID int64

	return &cli.Command{
		Name:  "set-password",
		Usage: "Replace the superuser password on behalf of an existing superuser",
		Flags: userFlags(&userID, nil),
		Action: func(c *cli.Context) error {
			password, err := e.prompt("New superuser password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("password must not be empty")
			}
			confirm, err := e.prompt("Repeat password: ")
			if err != nil {
				return err
			}
			if confirm != password {
				return errors.New("passwords do not match")
			}

			creds, err := e.credentials(c)
			if err != nil {
				return err
			}

			result, err := creds.ChangeSuperuserPassword(c.Context, entity.ExternalUser{ID: userID}, password)
			if err != nil {
				return err
			}
			if result == "" {
				return cli.Exit(fmt.Sprintf("User %d is not a superuser", userID), 2)
			}
			fmt.Fprintln(e.out, "Superuser password changed")

			return nil
		},
	}
}

func callerTokenCmd(e *env) *cli.Command {
	var (
		subject string
		ttl     time.Duration
	)

	return &cli.Command{
		Name:  "caller-token",
		Usage: "Mint a bearer token for the bot process calling the command API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "subject",
				Usage:       "Name of the calling process",
				Destination: &subject,
				Required:    true,
			},
			&cli.DurationFlag{
				Name:        "ttl",
				Usage:       "Token lifetime, 0 for no expiry",
				Value:       defaultCallerTokenTTL,
				Destination: &ttl,
			},
		},
		Action: func(c *cli.Context) error {
			tokens, err := auth.NewCallerTokenService(e.cfg)
			if err != nil {
				return err
			}

			token, err := tokens.Issue(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, token)

			return nil
		},
	}
}
