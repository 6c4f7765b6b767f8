package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/connectorkit/connectorkit/internal/marketplace"
	"github.com/connectorkit/connectorkit/internal/project"
)

var (
	marketplaceImage  string
	marketplaceIcon   string
	marketplacePath   string
	marketplaceOutput string
)

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Generate the marketplace descriptor for the connector.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := project.Load(filepath.Join(marketplacePath, project.FileName))
		if err != nil {
			return err
		}

		image := marketplaceImage
		if image == "" {
			image = manifest.Connector.Images.AMD64
		}

		descriptor := marketplace.FromManifest(manifest, image, marketplaceIcon)
		raw, err := json.MarshalIndent(descriptor, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))

		if marketplaceOutput != "" {
			if err := os.WriteFile(marketplaceOutput, raw, 0o644); err != nil {
				return fmt.Errorf("write marketplace descriptor: %w", err)
			}
		}
		return nil
	},
}

func init() {
	marketplaceCmd.Flags().StringVar(&marketplaceImage, "image", "", "container image name; defaults to the manifest image")
	marketplaceCmd.Flags().StringVar(&marketplaceIcon, "icon", "https://nourl.example/logo.svg", "icon image URL")
	marketplaceCmd.Flags().StringVar(&marketplacePath, "path", ".", "connector code path")
	marketplaceCmd.Flags().StringVar(&marketplaceOutput, "output", "", "output marketplace JSON file")
}
