package marketplace

import (
	"testing"

	"github.com/connectorkit/connectorkit/internal/project"
)

func sampleManifest() *project.Manifest {
	return &project.Manifest{
		Project: project.Project{
			Name:        "sample-connector",
			Version:     "1.2.3",
			Description: "A sample connector",
			Authors: []project.Author{
				{Name: "Jordan Example", Email: "jordan@example.com"},
			},
		},
		Connector: project.Connector{
			Title: "Sample Connector",
			Tags:  []string{"sample"},
			Images: project.Images{
				AMD64: "example/sample-connector:1.2.3",
			},
		},
	}
}

func TestFromManifest(t *testing.T) {
	d := FromManifest(sampleManifest(), "example/sample-connector:1.2.3", "https://example.com/logo.svg")

	if d.Name != "Sample Connector" {
		t.Fatalf("Name = %q, want the connector title", d.Name)
	}
	if d.Slug != "sample-connector" {
		t.Fatalf("Slug = %q, want the project name", d.Slug)
	}
	if d.MarketplaceTag != "1.2.3" {
		t.Fatalf("MarketplaceTag = %q, want the project version", d.MarketplaceTag)
	}
	if d.ConnectorOwner != "Jordan Example" || d.SupportContact != "jordan@example.com" {
		t.Fatalf("owner/contact = %q/%q, want the first author", d.ConnectorOwner, d.SupportContact)
	}
	if d.ImageURL != "example/sample-connector:1.2.3" {
		t.Fatalf("ImageURL = %q, want the supplied image", d.ImageURL)
	}
	if d.IconURL != "https://example.com/logo.svg" {
		t.Fatalf("IconURL = %q, want the supplied icon", d.IconURL)
	}
}

func TestFromManifest_NoAuthors(t *testing.T) {
	m := sampleManifest()
	m.Project.Authors = nil
	d := FromManifest(m, "img", "icon")
	if d.ConnectorOwner != "" || d.SupportContact != "" {
		t.Fatalf("owner/contact = %q/%q, want empty without authors", d.ConnectorOwner, d.SupportContact)
	}
}
