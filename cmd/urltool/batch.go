package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/logutil"
	"github.com/jongio/urlkit/urlparse"
)

// batchFile is the YAML input format of the batch command.
type batchFile struct {
	Base string   `yaml:"base"`
	URLs []string `yaml:"urls"`
}

// batchResult is the outcome for one input line.
type batchResult struct {
	Input  string `json:"input"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newBatchCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Parse a YAML file of URLs, resolving against an optional base",
		Long: `Parse every URL listed in a YAML file and report canonical forms.

The file format is:

    base: http://example.com/dir/   # optional
    urls:
      - ../a
      - https://other.example/
      - http://[::1]:8080/x`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logutil.NewLogger("batch")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read batch file: %w", err)
			}

			var file batchFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse batch file: %w", err)
			}
			if len(file.URLs) == 0 {
				return fmt.Errorf("batch file %s lists no urls", args[0])
			}

			opts := urlparse.Options{}
			if file.Base != "" {
				base, err := urlparse.Parse(file.Base)
				if err != nil {
					return fmt.Errorf("invalid base URL %q: %w", file.Base, err)
				}
				opts.Base = base
			}

			results := make([]batchResult, 0, len(file.URLs))
			failed := 0
			for _, input := range file.URLs {
				u, err := opts.Parse(input)
				if err != nil {
					log.WithURL(input).Debug("parse failed", "error", err)
					if strict {
						return fmt.Errorf("parse %q: %w", input, err)
					}
					failed++
					results = append(results, batchResult{Input: input, Error: err.Error()})
					continue
				}
				log.WithURL(input).Debug("parsed", "href", u.String())
				results = append(results, batchResult{Input: input, Result: u.String()})
			}

			return cliout.Print(results, func() {
				rows := make([]cliout.TableRow, 0, len(results))
				for _, r := range results {
					row := cliout.TableRow{"Input": r.Input, "Status": cliout.Status("valid")}
					if r.Error != "" {
						row["Result"] = r.Error
						row["Status"] = cliout.Status("invalid")
					} else {
						row["Result"] = r.Result
					}
					rows = append(rows, row)
				}
				cliout.Table([]string{"Input", "Result", "Status"}, rows)
				cliout.Newline()
				if failed > 0 {
					cliout.Warning("%d of %d URLs failed to parse", failed, len(results))
				} else {
					cliout.Success("Parsed %d URLs", len(results))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first URL that fails to parse")

	return cmd
}
