package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/formenc"
	"github.com/jongio/urlkit/urlparse"
)

// parseResult is the machine-readable breakdown of one parsed URL.
type parseResult struct {
	Input      string       `json:"input"`
	Href       string       `json:"href"`
	Scheme     string       `json:"scheme"`
	Username   string       `json:"username,omitempty"`
	Password   string       `json:"password,omitempty"`
	Host       string       `json:"host,omitempty"`
	HostKind   string       `json:"hostKind"`
	Port       int          `json:"port,omitempty"`
	Path       string       `json:"path"`
	Query      string       `json:"query,omitempty"`
	Fragment   string       `json:"fragment,omitempty"`
	Params     []queryParam `json:"params,omitempty"`
	Violations []string     `json:"violations,omitempty"`
}

type queryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func newParseCommand() *cobra.Command {
	var (
		base           string
		showParams     bool
		showViolations bool
	)

	cmd := &cobra.Command{
		Use:   "parse URL [URL...]",
		Short: "Parse URLs and print their canonical form and components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := urlparse.Options{}
			if base != "" {
				baseURL, err := urlparse.Parse(base)
				if err != nil {
					return fmt.Errorf("invalid base URL %q: %w", base, err)
				}
				opts.Base = baseURL
			}

			results := make([]parseResult, 0, len(args))
			for _, input := range args {
				var violations []string
				opts.ViolationFunc = func(v urlparse.SyntaxViolation) {
					violations = append(violations, v.Description())
				}

				u, err := opts.Parse(input)
				if err != nil {
					return fmt.Errorf("parse %q: %w", input, err)
				}

				result := breakdown(input, u)
				if showViolations {
					result.Violations = violations
				}
				if showParams {
					if query, ok := u.Query(); ok {
						for _, pair := range formenc.Parse(query) {
							result.Params = append(result.Params, queryParam{Key: pair.Key, Value: pair.Value})
						}
					}
				}
				results = append(results, result)
			}

			return cliout.Print(results, func() {
				for _, r := range results {
					printResult(r)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Base URL for resolving relative input")
	cmd.Flags().BoolVar(&showParams, "params", false, "Decode the query as form-urlencoded parameters")
	cmd.Flags().BoolVar(&showViolations, "violations", false, "Report non-fatal syntax violations")

	return cmd
}

// breakdown splits a parsed URL into its display components.
func breakdown(input string, u *urlparse.URL) parseResult {
	result := parseResult{
		Input:    input,
		Href:     u.String(),
		Scheme:   u.Scheme(),
		Username: u.Username(),
		Password: u.Password(),
		Host:     u.HostStr(),
		HostKind: u.Host().Kind().String(),
		Path:     u.Path(),
	}
	if port := u.Port(); port >= 0 {
		result.Port = port
	}
	if query, ok := u.Query(); ok {
		result.Query = query
	}
	if fragment, ok := u.Fragment(); ok {
		result.Fragment = fragment
	}
	return result
}

func printResult(r parseResult) {
	cliout.Success("%s", cliout.URL(r.Href))
	cliout.Label("Scheme", r.Scheme)
	if r.Username != "" {
		cliout.Label("Username", r.Username)
	}
	if r.Password != "" {
		cliout.Label("Password", r.Password)
	}
	if r.Host != "" {
		cliout.Label("Host", fmt.Sprintf("%s (%s)", r.Host, r.HostKind))
	}
	if r.Port > 0 {
		cliout.Label("Port", strconv.Itoa(r.Port))
	}
	cliout.Label("Path", r.Path)
	if r.Query != "" {
		cliout.Label("Query", r.Query)
	}
	for _, p := range r.Params {
		cliout.Item("%s = %s", p.Key, p.Value)
	}
	if r.Fragment != "" {
		cliout.Label("Fragment", r.Fragment)
	}
	for _, v := range r.Violations {
		cliout.ItemWarning("%s", v)
	}
}
