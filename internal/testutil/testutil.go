// Package testutil provides shared test fixtures for the portfolio editor.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/avendel/folio/internal/models"
	"github.com/avendel/folio/internal/storage"
)

// SeedData returns a small snapshot with one entity per collection.
func SeedData() *models.PortfolioData {
	return &models.PortfolioData{
		PersonalInfo: models.PersonalInfo{
			Name:     "Test Owner",
			Title:    "Engineer",
			Bio:      "test bio",
			Location: "Testville",
			Email:    "owner@example.com",
		},
		Projects: []models.Project{
			{ID: "p1", Title: "Project One", Description: "first", Technologies: []string{"Go"}, Featured: true},
		},
		Experience: []models.Experience{
			{ID: "e1", Title: "Engineer", Company: "Acme", Location: "Remote", StartDate: "2020-01", Description: "work", Technologies: []string{}},
		},
		Skills: []models.Skill{
			{ID: "s1", Name: "Go", Category: models.CategoryBackend, Level: models.LevelExperienced},
		},
	}
}

// TestDataFile creates a DataFile under a temp directory that is cleaned up
// with the test.
func TestDataFile(t *testing.T) *storage.DataFile {
	t.Helper()
	file, err := storage.NewDataFile(filepath.Join(t.TempDir(), "portfolioData.ts"))
	if err != nil {
		t.Fatalf("NewDataFile: %v", err)
	}
	return file
}
