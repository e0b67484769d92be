package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/logutil"
	"github.com/jongio/urlkit/version"
)

func newRootCommand() *cobra.Command {
	var (
		outputFormat string
		debug        bool
	)

	info := version.New("urltool")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	rootCmd := &cobra.Command{
		Use:           "urltool",
		Short:         "Parse, resolve, and inspect URLs per the WHATWG URL Standard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug || logutil.IsDebugEnabled(), false)
			return cliout.SetFormat(outputFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newHostCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(version.NewCommand(info, &outputFormat))

	return rootCmd
}
