package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuel-avson/retrofolio/internal/infra/catalog"
)

func TestDefault(t *testing.T) {
	data := catalog.Default()

	if data.Profile.Name == "" || data.Profile.Email == "" {
		t.Error("default catalog missing profile identity")
	}
	if len(data.Projects) != 6 {
		t.Errorf("expected 6 projects, got %d", len(data.Projects))
	}
	for _, p := range data.Projects {
		if p.Title == "" || p.Description == "" {
			t.Errorf("project with empty title or description: %+v", p)
		}
	}
	if len(data.Experience) == 0 {
		t.Error("default catalog has no experience entries")
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	data, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Profile.Name != catalog.Default().Profile.Name {
		t.Error("empty path should return the built-in catalog")
	}
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[profile]
name = "Ada Lovelace"
tagline = "Analyst"
email = "ada@example.org"
bio = "First programmer."

[skills]
tools = ["Analytical Engine"]

[[projects]]
title = "Notes on the Analytical Engine"
description = "Annotated translation with original algorithms."
link = "#"
tech = ["Mathematics"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Profile.Name != "Ada Lovelace" {
		t.Errorf("profile name: got %q", data.Profile.Name)
	}
	if len(data.Projects) != 1 || data.Projects[0].Title != "Notes on the Analytical Engine" {
		t.Errorf("projects not loaded: %+v", data.Projects)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}
