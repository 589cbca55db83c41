// Package store holds the in-memory portfolio snapshot and its mutation
// operations. Mutations are copy-on-write: every edit builds a fresh
// PortfolioData value and swaps it in, so a snapshot handed out to a reader
// is never mutated underneath it.
package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avendel/folio/internal/models"
)

// Store owns the current snapshot. One instance per process, constructed at
// startup; all edit paths (REST, MCP, file watcher) go through it.
type Store struct {
	mu     sync.RWMutex
	data   *models.PortfolioData
	lastID int64
}

// New creates a store seeded with the given snapshot. The store takes
// ownership of seed; callers must not mutate it afterwards.
func New(seed *models.PortfolioData) *Store {
	return &Store{data: seed}
}

// Snapshot returns the current snapshot. The returned value is immutable by
// contract and safe to read concurrently with further edits.
func (s *Store) Snapshot() *models.PortfolioData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Replace swaps in an externally loaded snapshot (e.g. after the data file
// was overwritten on disk).
func (s *Store) Replace(d *models.PortfolioData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
}

// mutate clones the current snapshot, applies fn to the clone, and installs
// it as the new snapshot.
func (s *Store) mutate(fn func(d *models.PortfolioData)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.Clone()
	fn(next)
	s.data = next
}

// newID generates a session-unique entity id from the current millisecond
// timestamp, bumped when two ids land in the same millisecond.
func (s *Store) newID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

// UpdatePersonalInfo replaces one named PersonalInfo field. Unknown field
// names are a silent no-op; the returned bool reports whether the field was
// recognised.
func (s *Store) UpdatePersonalInfo(field, value string) bool {
	known := true
	s.mutate(func(d *models.PortfolioData) {
		p := &d.PersonalInfo
		switch field {
		case "name":
			p.Name = value
		case "title":
			p.Title = value
		case "bio":
			p.Bio = value
		case "location":
			p.Location = value
		case "email":
			p.Email = value
		case "github":
			p.Github = value
		case "linkedin":
			p.Linkedin = value
		case "twitter":
			p.Twitter = value
		case "website":
			p.Website = value
		case "resumeUrl":
			p.ResumeURL = value
		default:
			known = false
		}
	})
	return known
}

// AddProject appends a new project with placeholder content and returns its id.
func (s *Store) AddProject() string {
	s.mu.Lock()
	id := s.newID()
	s.mu.Unlock()
	s.mutate(func(d *models.PortfolioData) {
		d.Projects = append(d.Projects, models.Project{
			ID:           id,
			Title:        "New Project",
			Description:  "Project description",
			Technologies: []string{},
			Featured:     false,
		})
	})
	return id
}

// AddExperience appends a new experience entry and returns its id.
func (s *Store) AddExperience() string {
	s.mu.Lock()
	id := s.newID()
	s.mu.Unlock()
	s.mutate(func(d *models.PortfolioData) {
		d.Experience = append(d.Experience, models.Experience{
			ID:           id,
			Title:        "New Position",
			Company:      "Company Name",
			Location:     "Location",
			StartDate:    "",
			Description:  "Job description",
			Technologies: []string{},
		})
	})
	return id
}

// AddSkill appends a new skill and returns its id.
func (s *Store) AddSkill() string {
	s.mu.Lock()
	id := s.newID()
	s.mu.Unlock()
	s.mutate(func(d *models.PortfolioData) {
		d.Skills = append(d.Skills, models.Skill{
			ID:       id,
			Name:     "New Skill",
			Category: models.CategoryFrontend,
			Level:    models.LevelLearning,
		})
	})
	return id
}

// ProjectPatch is a partial update for a project. Nil fields are left
// untouched; Technologies is a comma-separated list that replaces the whole
// sequence.
type ProjectPatch struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	LongDescription *string `json:"longDescription"`
	ModalContent    *string `json:"modalContent"`
	Technologies    *string `json:"technologies"`
	GithubURL       *string `json:"githubUrl"`
	LiveURL         *string `json:"liveUrl"`
	WebsiteURL      *string `json:"websiteUrl"`
	SteamURL        *string `json:"steamUrl"`
	ImageURL        *string `json:"imageUrl"`
	Featured        *bool   `json:"featured"`
}

// ExperiencePatch is a partial update for an experience entry.
type ExperiencePatch struct {
	Title               *string `json:"title"`
	Company             *string `json:"company"`
	Location            *string `json:"location"`
	StartDate           *string `json:"startDate"`
	EndDate             *string `json:"endDate"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailedDescription"`
	LogoURL             *string `json:"logoUrl"`
	Technologies        *string `json:"technologies"`
}

// SkillPatch is a partial update for a skill. Invalid categories and levels
// are ignored, keeping the enums closed.
type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
}

// UpdateProject merges patch onto the project with the given id. Unknown ids
// are a silent no-op.
func (s *Store) UpdateProject(id string, patch ProjectPatch) {
	s.mutate(func(d *models.PortfolioData) {
		for i := range d.Projects {
			if d.Projects[i].ID != id {
				continue
			}
			p := &d.Projects[i]
			setString(&p.Title, patch.Title)
			setString(&p.Description, patch.Description)
			setString(&p.LongDescription, patch.LongDescription)
			setString(&p.ModalContent, patch.ModalContent)
			if patch.Technologies != nil {
				p.Technologies = SplitTechnologies(*patch.Technologies)
			}
			setString(&p.GithubURL, patch.GithubURL)
			setString(&p.LiveURL, patch.LiveURL)
			setString(&p.WebsiteURL, patch.WebsiteURL)
			setString(&p.SteamURL, patch.SteamURL)
			setString(&p.ImageURL, patch.ImageURL)
			if patch.Featured != nil {
				p.Featured = *patch.Featured
			}
			return
		}
	})
}

// UpdateExperience merges patch onto the experience entry with the given id.
func (s *Store) UpdateExperience(id string, patch ExperiencePatch) {
	s.mutate(func(d *models.PortfolioData) {
		for i := range d.Experience {
			if d.Experience[i].ID != id {
				continue
			}
			e := &d.Experience[i]
			setString(&e.Title, patch.Title)
			setString(&e.Company, patch.Company)
			setString(&e.Location, patch.Location)
			setString(&e.StartDate, patch.StartDate)
			setString(&e.EndDate, patch.EndDate)
			setString(&e.Description, patch.Description)
			setString(&e.DetailedDescription, patch.DetailedDescription)
			setString(&e.LogoURL, patch.LogoURL)
			if patch.Technologies != nil {
				e.Technologies = SplitTechnologies(*patch.Technologies)
			}
			return
		}
	})
}

// UpdateSkill merges patch onto the skill with the given id.
func (s *Store) UpdateSkill(id string, patch SkillPatch) {
	s.mutate(func(d *models.PortfolioData) {
		for i := range d.Skills {
			if d.Skills[i].ID != id {
				continue
			}
			sk := &d.Skills[i]
			setString(&sk.Name, patch.Name)
			if patch.Category != nil {
				if c := models.SkillCategory(*patch.Category); c.Valid() {
					sk.Category = c
				}
			}
			if patch.Level != nil {
				if l := models.SkillLevel(*patch.Level); l.Valid() {
					sk.Level = l
				}
			}
			return
		}
	})
}

// DeleteProject removes the project with the given id. No-op when absent.
func (s *Store) DeleteProject(id string) {
	s.mutate(func(d *models.PortfolioData) {
		d.Projects = deleteByID(d.Projects, id, func(p models.Project) string { return p.ID })
	})
}

// DeleteExperience removes the experience entry with the given id.
func (s *Store) DeleteExperience(id string) {
	s.mutate(func(d *models.PortfolioData) {
		d.Experience = deleteByID(d.Experience, id, func(e models.Experience) string { return e.ID })
	})
}

// DeleteSkill removes the skill with the given id.
func (s *Store) DeleteSkill(id string) {
	s.mutate(func(d *models.PortfolioData) {
		d.Skills = deleteByID(d.Skills, id, func(sk models.Skill) string { return sk.ID })
	})
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// SplitTechnologies parses a comma-separated technology list into a trimmed
// sequence with empty entries dropped and order preserved.
func SplitTechnologies(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
