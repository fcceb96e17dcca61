package main

import (
	"os"

	"github.com/picol-go/picol/harness"
	"github.com/spf13/cobra"
)

func main() {
	var hostPath, namePattern string
	var verbose bool

	root := &cobra.Command{
		Use:   "harness [flags] <test-files-or-dirs>...",
		Short: "Test harness for the picol interpreter",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitCode := harness.Run(harness.Config{
				HostPath:    hostPath,
				TestPaths:   args,
				NamePattern: namePattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
				Verbose:     verbose,
			})
			os.Exit(exitCode)
		},
	}
	root.Flags().StringVar(&hostPath, "host", "", "path to the host executable (required)")
	root.Flags().StringVarP(&namePattern, "filter", "f", "", "only run tests whose \"suite > case\" name matches this regexp")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print each passing test, not just failures")
	root.MarkFlagRequired("host")

	list := &cobra.Command{
		Use:   "list <test-files-or-dirs>...",
		Short: "List test case names without running them",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitCode := harness.List(harness.Config{
				TestPaths:   args,
				NamePattern: namePattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
			})
			os.Exit(exitCode)
		},
	}
	list.Flags().StringVarP(&namePattern, "filter", "f", "", "only list tests whose \"suite > case\" name matches this regexp")
	root.AddCommand(list)

	root.Execute()
}
