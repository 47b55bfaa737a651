// Command dodo inspects Dodo Payments documents offline: it lists the known
// models, validates and normalizes JSON bodies, and prints request URLs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/dodopayments-go/infra/initializer"
	"github.com/amirasaad/dodopayments-go/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// cli carries the state shared by the subcommands.
type cli struct {
	envFile string
	noColor bool
	logOut  io.Writer
	deps    *initializer.Deps

	ok   func(a ...any) string
	bad  func(a ...any) string
	dim  func(a ...any) string
	bold func(a ...any) string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{logOut: errOut}

	root := &cobra.Command{
		Use:   "dodo",
		Short: "Offline tools for Dodo Payments API documents",
		Long: `dodo works with Dodo Payments request and response bodies without
talking to the API.

Examples:
  dodo models
  dodo validate CheckoutSessionRequest body.json
  cat payment.json | dodo roundtrip Payment --pretty
  dodo url retrieve_checkout_session id=cks_123`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Environment file, searched for in parent directories")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(c.modelsCmd())
	root.AddCommand(c.validateCmd())
	root.AddCommand(c.roundtripCmd())
	root.AddCommand(c.urlCmd())
	return root
}

func (c *cli) init() error {
	palette := func(attrs ...color.Attribute) func(a ...any) string {
		col := color.New(attrs...)
		if c.noColor {
			col.DisableColor()
		}
		return col.SprintFunc()
	}
	c.ok = palette(color.FgGreen)
	c.bad = palette(color.FgRed)
	c.dim = palette(color.Faint)
	c.bold = palette(color.Bold)

	cfg, err := config.Load(c.envFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg, initializer.WithLogOutput(c.logOut))
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	c.deps = deps
	return nil
}
