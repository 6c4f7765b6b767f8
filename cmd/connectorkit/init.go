package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/connectorkit/connectorkit/internal/scaffold"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new connector project from the starter templates.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initPath, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", ".", "initialization path")
}

func runInit(path string, out io.Writer) error {
	res, err := scaffold.Generate(path)
	if err != nil {
		return err
	}

	for _, fn := range res.Skipped {
		fmt.Fprintf(out, "WARNING: skipped existing %s\n", fn)
	}

	fmt.Fprintln(out, `Now that you have an initialized connector project, review the generated
files for your next steps:

- connector.toml holds the project metadata and is used to build the
  marketplace files
- connector.go is a sample connector with example settings, a credential
  example, and a sample job function
- connector_test.go is a starting point for the connector's tests`)

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, `Could not initialize all of the files as some already existed. Files that
previously existed were not modified; review the project manually to make
sure everything looks correct.`)
	}
	return nil
}
