package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/urlparse"
)

// resolveResult is one reference resolved against the base.
type resolveResult struct {
	Reference string `json:"reference"`
	Result    string `json:"result"`
}

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve BASE REF [REF...]",
		Short: "Resolve relative references against a base URL",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := urlparse.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid base URL %q: %w", args[0], err)
			}

			results := make([]resolveResult, 0, len(args)-1)
			for _, ref := range args[1:] {
				resolved, err := base.Join(ref)
				if err != nil {
					return fmt.Errorf("resolve %q against %q: %w", ref, base, err)
				}
				results = append(results, resolveResult{
					Reference: ref,
					Result:    resolved.String(),
				})
			}

			return cliout.Print(results, func() {
				cliout.Info("Base: %s", cliout.URL(base.String()))
				for _, r := range results {
					cliout.Item("%-30s %s %s", r.Reference, cliout.Muted("→"), r.Result)
				}
			})
		},
	}

	return cmd
}
