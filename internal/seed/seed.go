// Package seed provides the default portfolio snapshot used when no data
// file exists yet.
package seed

import "github.com/avendel/folio/internal/models"

// Default returns a fresh copy of the starter snapshot. Callers own the
// returned value.
func Default() *models.PortfolioData {
	return &models.PortfolioData{
		PersonalInfo: models.PersonalInfo{
			Name:     "Alex Vendel",
			Title:    "Full-Stack Developer",
			Bio:      "I build small, sharp tools and the occasional game. Currently exploring local-first software.",
			Location: "Utrecht, NL",
			Email:    "alex@vendel.dev",
			Github:   "https://github.com/avendel",
			Linkedin: "https://linkedin.com/in/avendel",
			Website:  "https://vendel.dev",
		},
		Projects: []models.Project{
			{
				ID:              "1714000000001",
				Title:           "Folio",
				Description:     "This site: a portfolio with an in-browser CMS panel that saves back to its own source.",
				LongDescription: "The editor keeps the whole portfolio in memory and serializes it back into the checked-in data file through a tiny local save server, with a clipboard fallback when the server is not running.",
				Technologies:    []string{"Go", "chi", "Server-Sent Events"},
				GithubURL:       "https://github.com/avendel/folio",
				Featured:        true,
			},
			{
				ID:           "1714000000002",
				Title:        "Driftwood",
				Description:  "A procedural island generator with tide simulation.",
				Technologies: []string{"Go", "WebGL"},
				LiveURL:      "https://driftwood.vendel.dev",
				Featured:     false,
			},
		},
		Experience: []models.Experience{
			{
				ID:           "1714000000003",
				Title:        "Software Engineer",
				Company:      "Harbor Systems",
				Location:     "Rotterdam, NL",
				StartDate:    "2022-09",
				Description:  "Backend services for port logistics.",
				Technologies: []string{"Go", "PostgreSQL", "Kafka"},
			},
			{
				ID:           "1714000000004",
				Title:        "Junior Developer",
				Company:      "Bright Agency",
				Location:     "Utrecht, NL",
				StartDate:    "2020-02",
				EndDate:      "2022-08",
				Description:  "Client websites and internal tooling.",
				Technologies: []string{"TypeScript", "React"},
			},
		},
		Skills: []models.Skill{
			{ID: "1714000000005", Name: "Go", Category: models.CategoryBackend, Level: models.LevelHighlyExperienced},
			{ID: "1714000000006", Name: "TypeScript", Category: models.CategoryFrontend, Level: models.LevelExperienced},
			{ID: "1714000000007", Name: "PostgreSQL", Category: models.CategoryDatabase, Level: models.LevelComfortable},
			{ID: "1714000000008", Name: "Docker", Category: models.CategoryTools, Level: models.LevelExperienced},
		},
	}
}
