// Package marketplace emits the marketplace-facing descriptor for a
// connector, combining the project manifest with an image reference and icon
// URL.
package marketplace

import (
	"github.com/connectorkit/connectorkit/internal/project"
)

// Descriptor is the JSON document a marketplace listing is built from.
type Descriptor struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description"`
	IconURL        string   `json:"icon_url"`
	ImageURL       string   `json:"image_url"`
	MarketplaceTag string   `json:"marketplace_tag"`
	ConnectorOwner string   `json:"connector_owner"`
	SupportContact string   `json:"support_contact"`
	Tags           []string `json:"tags"`
}

// FromManifest builds the descriptor from a validated manifest. The first
// listed author owns the listing.
func FromManifest(m *project.Manifest, imageURL, iconURL string) Descriptor {
	d := Descriptor{
		Name:           m.Connector.Title,
		Slug:           m.Project.Name,
		Description:    m.Project.Description,
		IconURL:        iconURL,
		ImageURL:       imageURL,
		MarketplaceTag: m.Project.Version,
		Tags:           m.Connector.Tags,
	}
	if len(m.Project.Authors) > 0 {
		d.ConnectorOwner = m.Project.Authors[0].Name
		d.SupportContact = m.Project.Authors[0].Email
	}
	return d
}
