package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/dodopayments-go/pkg/endpoint"
	"github.com/amirasaad/dodopayments-go/pkg/registry"
	"github.com/spf13/cobra"
)

var errNoAPIKey = errors.New("no API key configured: set DODO_PAYMENTS_API_KEY")

func (c *cli) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known models and their required fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range c.deps.Models.Names() {
				m, err := c.deps.Models.New(name)
				if err != nil {
					return err
				}
				required := strings.Join(m.Schema().Required(), ", ")
				if required == "" {
					required = "-"
				}
				fmt.Fprintf(out, "%s %s\n", c.bold(fmt.Sprintf("%-24s", name)), c.dim("required: "+required))
			}
			return nil
		},
	}
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "validate <model> [file|-]",
		Short:             "Decode a JSON document and check its required fields",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: c.completeModels,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.decode(cmd, args)
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.ok("valid"), args[0])
			return nil
		},
	}
}

func (c *cli) roundtripCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:               "roundtrip <model> [file|-]",
		Short:             "Decode a JSON document and print it re-encoded",
		Long:              "Decode a JSON document and print it re-encoded. Unset fields stay\nabsent, explicit nulls stay null and unknown fields are kept.",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: c.completeModels,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.decode(cmd, args)
			if err != nil {
				return err
			}
			var data []byte
			if pretty {
				data, err = json.MarshalIndent(m, "", "  ")
			} else {
				data, err = json.Marshal(m)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	return cmd
}

func (c *cli) urlCmd() *cobra.Command {
	var names []string
	for _, op := range endpoint.Operations() {
		names = append(names, op.Name)
	}
	return &cobra.Command{
		Use:       "url <operation> [name=value ...]",
		Short:     "Print the method and URL of an API operation",
		Long:      "Print the method and URL of an API operation.\n\nOperations: " + strings.Join(names, ", "),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := endpoint.Lookup(args[0])
			if err != nil {
				return err
			}
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			if c.deps.Endpoint == nil {
				return errNoAPIKey
			}
			u, err := c.deps.Endpoint.URL(op, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.bold(op.Method), u)
			return nil
		},
	}
}

// decode reads the document named by args[1] (stdin when absent or "-")
// and decodes it as the model args[0].
func (c *cli) decode(cmd *cobra.Command, args []string) (registry.Model, error) {
	name := args[0]
	var (
		data []byte
		err  error
	)
	if len(args) < 2 || args[1] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	m, err := c.deps.Models.Decode(name, data)
	if err != nil {
		return nil, err
	}
	if unknown := m.Schema().Unknown(m.Envelope()); len(unknown) > 0 {
		c.deps.Logger.Debug("Keeping undeclared fields", "model", name, "fields", unknown)
	}
	return m, nil
}

func (c *cli) completeModels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	models := registry.Default()
	if c.deps != nil {
		models = c.deps.Models
	}
	return models.Names(), cobra.ShellCompDirectiveNoFileComp
}

func parseParams(args []string) (endpoint.RawParams, error) {
	params := make(endpoint.RawParams, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: want name=value", arg)
		}
		params = append(params, endpoint.Param{Name: name, Value: value})
	}
	return params, nil
}
