package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func printCmd() *cobra.Command {
	var flags optionFlags
	var initialDataOnly bool

	c := &cobra.Command{
		Use:   "print",
		Short: "Resolve the configuration and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			if initialDataOnly {
				return printJSON(cmd.OutOrStdout(), cfg.InitialData)
			}
			return printJSON(cmd.OutOrStdout(), cfg)
		},
	}

	flags.bind(c.Flags())
	c.Flags().BoolVar(&initialDataOnly, "initial-data", false, "Print only the resolved initial data")
	return c
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
