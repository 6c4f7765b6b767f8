package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/connectorkit/connectorkit/internal/imagebuild"
	"github.com/connectorkit/connectorkit/internal/project"
)

var (
	buildPath     string
	buildPlatform string
	buildTag      string
	buildCleanup  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the connector container image.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := buildTag
		if tag == "" {
			manifest, err := project.Load(filepath.Join(buildPath, project.FileName))
			if err != nil {
				return err
			}
			tag = manifest.Project.Name
		}

		opts := imagebuild.Options{
			Dir:      buildPath,
			Tag:      tag,
			Platform: buildPlatform,
			Output:   cmd.OutOrStdout(),
		}
		if cmd.Flags().Changed("cleanup") {
			opts.Cleanup = &buildCleanup
		}
		if err := imagebuild.Build(cmd.Context(), opts); err != nil {
			return &exitError{code: 1, err: err}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildPath, "path", ".", "connector code path")
	buildCmd.Flags().StringVar(&buildPlatform, "platform", "", "platform to build for")
	buildCmd.Flags().StringVar(&buildTag, "tag", "", "tag for the final image; defaults to the project name")
	buildCmd.Flags().BoolVar(&buildCleanup, "cleanup", false, "auto-remove generated build files")
}
