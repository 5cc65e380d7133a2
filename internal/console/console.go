// Package console implements the ethela command-line storefront and admin tool.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ethela-storefront/internal/client"
	"ethela-storefront/internal/clientstate"
	"ethela-storefront/internal/config"
	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Options configure the console; zero values fall back to the process environment.
type Options struct {
	Config config.ClientConfig
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *zap.Logger
}

type app struct {
	cfg    config.ClientConfig
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
	// readSecret reads a line without echo; nil when input is not a terminal.
	readSecret func() ([]byte, error)

	state   *clientstate.Store
	api     *client.Client
	session *session.Session
}

// NewRootCommand assembles the ethela command tree.
func NewRootCommand(opts Options) *cobra.Command {
	in := orReader(opts.In)
	a := &app{
		cfg:    opts.Config,
		in:     bufio.NewReader(in),
		out:    orWriter(opts.Out, os.Stdout),
		errOut: orWriter(opts.Err, os.Stderr),
		logger: logging.OrNop(opts.Logger),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		a.readSecret = func() ([]byte, error) { return term.ReadPassword(fd) }
	}

	root := &cobra.Command{
		Use:           "ethela",
		Short:         "Ethéla storefront console",
		Long:          "Browse the Ethéla collections and journal, verify certificates, and manage the catalog as an admin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.session != nil {
				a.session.Dispose()
			}
			_ = a.logger.Sync()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		a.loginCmd(),
		a.signupCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.featuredCmd(),
		a.collectionsCmd(),
		a.blogCmd(),
		a.verifyCmd(),
		a.cartCmd(),
		a.contactCmd(),
		a.productsCmd(),
		a.blogsCmd(),
	)
	return root
}

// Execute runs the console with cfg against the process streams.
func Execute(ctx context.Context, cfg config.ClientConfig, logger *zap.Logger) error {
	root := NewRootCommand(Options{Config: cfg, Logger: logger})
	return root.ExecuteContext(ctx)
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.APIURL == "" {
		a.cfg.APIURL = "http://localhost:8080"
	}
	state, err := clientstate.Open(a.cfg.StateDir)
	if err != nil {
		return err
	}
	a.state = state
	a.logger.Debug("client state loaded", zap.String("path", state.Path()))
	a.api = client.New(a.cfg, state, a.logger)
	a.session = session.New(a.api, state, a.logger)
	if err := a.session.Init(ctx); err != nil {
		a.logger.Warn("could not restore session", zap.Error(err))
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts on stderr and reads one trimmed line from input.
func (a *app) readLine(prompt string) (string, error) {
	fmt.Fprint(a.errOut, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSpace(strings.TrimSuffix(prompt, ":")), err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a secret without echo on a terminal and falls back to readLine otherwise.
func (a *app) readPassword(prompt string) (string, error) {
	if a.readSecret == nil {
		return a.readLine(prompt)
	}
	fmt.Fprint(a.errOut, prompt)
	secret, err := a.readSecret()
	fmt.Fprintln(a.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// requireLogin reports the login prompt when nobody is signed in.
func (a *app) requireLogin(what string) (*domain.Principal, error) {
	p, ok := a.session.Principal()
	if !ok {
		return nil, fmt.Errorf("please log in to manage %s: run `ethela login`", what)
	}
	return p, nil
}

func orReader(r io.Reader) io.Reader {
	if r == nil {
		return os.Stdin
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
