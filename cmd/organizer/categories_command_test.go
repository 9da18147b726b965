package main

import (
	"encoding/json"
	"testing"

	"github.com/YellowKidokc/File-Organization/internal/classify"
)

func TestCategoriesRendersTable(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"categories"}, "")
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}

	requireContains(t, stdout, "CATEGORY")
	requireContains(t, stdout, "Images")
	requireContains(t, stdout, ".png")
	requireContains(t, stdout, classify.FallbackLabel)
	requireContains(t, stdout, "everything else")
}

func TestCategoriesJSONMatchesTable(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"categories", "--json"}, "")
	if err != nil {
		t.Fatalf("categories --json failed: %v", err)
	}

	var categories []classify.Category
	if err := json.Unmarshal([]byte(stdout), &categories); err != nil {
		t.Fatalf("decode categories: %v\n%s", err, stdout)
	}
	if len(categories) != len(classify.Table()) {
		t.Fatalf("expected %d categories, got %d", len(classify.Table()), len(categories))
	}
	if categories[0].Label != "Images" {
		t.Fatalf("expected Images first, got %+v", categories[0])
	}
	found := false
	for _, ext := range categories[0].Extensions {
		if ext == ".png" {
			found = true
		}
	}
	if !found {
		t.Fatalf(".png missing from Images: %+v", categories[0])
	}
}
