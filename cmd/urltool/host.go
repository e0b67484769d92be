package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/hostparse"
)

// hostResult is the classification of one host string.
type hostResult struct {
	Input     string `json:"input"`
	Kind      string `json:"kind"`
	Canonical string `json:"canonical"`
}

func newHostCommand() *cobra.Command {
	var opaque bool

	cmd := &cobra.Command{
		Use:   "host HOST [HOST...]",
		Short: "Classify host strings as domain, IPv4, IPv6, or opaque",
		Long: `Classify host strings the way a special-scheme URL would: as an IDNA
domain, an IPv4 address, or a bracketed IPv6 address. With --opaque, hosts
are parsed the way a non-special scheme would, keeping the text opaque
except for IPv6 literals.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := hostparse.Parse
			if opaque {
				parse = hostparse.ParseOpaque
			}

			results := make([]hostResult, 0, len(args))
			for _, input := range args {
				host, err := parse(input)
				if err != nil {
					return fmt.Errorf("host %q: %w", input, err)
				}
				results = append(results, hostResult{
					Input:     input,
					Kind:      host.Kind().String(),
					Canonical: host.String(),
				})
			}

			return cliout.Print(results, func() {
				for _, r := range results {
					cliout.Success("%s", r.Canonical)
					cliout.Label("Input", r.Input)
					cliout.Label("Kind", r.Kind)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&opaque, "opaque", false, "Parse as a non-special (opaque) host")

	return cmd
}
