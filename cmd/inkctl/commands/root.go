// Package commands implements inkctl, a terminal client for the inkwell API.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"inkwell/internal/client/api"
	"inkwell/internal/client/session"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type globalOptions struct {
	server      string
	credentials string
	verbose     bool
}

// NewRootCommand builds the inkctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "inkctl",
		Short:         "Sign up, sign in and manage an inkwell account",
		SilenceUsage: true,
	}

	server := os.Getenv("INKWELL_SERVER")
	if server == "" {
		server = defaultServer
	}

	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", server, "inkwell server URL")
	cmd.PersistentFlags().StringVar(&opts.credentials, "credentials", defaultCredentialsPath(), "credentials file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log client activity to stderr")

	cmd.AddCommand(
		newSignupCommand(opts),
		newVerifyCommand(opts),
		newResendCommand(opts),
		newSigninCommand(opts),
		newWhoamiCommand(opts),
		newPasswdCommand(opts),
		newSignoutCommand(opts),
		newHealthCommand(opts),
	)

	return cmd
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".inkwell-credentials.json"
	}

	return filepath.Join(dir, "inkwell", "credentials.json")
}

// newClient wires the API client to on-disk credentials and cookies so a
// session survives between invocations.
func (o *globalOptions) newClient(cmd *cobra.Command) (*api.Client, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	jar, err := newFileJar(filepath.Join(filepath.Dir(o.credentials), "cookies.json"))
	if err != nil {
		return nil, err
	}

	return api.New(api.Options{
		BaseURL: o.server,
		Store:   session.NewFileStore(o.credentials),
		Jar:     jar,
		OnSessionExpired: func(err error) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Session expired, run `inkctl signin` again.")
		},
		Logger: logger,
	})
}
