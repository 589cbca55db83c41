// Package models defines the domain types for Folio.
package models

// SkillCategory is the closed set of skill groupings shown on the site.
type SkillCategory string

// Skill categories.
const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryDatabase SkillCategory = "database"
	CategoryTools    SkillCategory = "tools"
	CategoryOther    SkillCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryTools, CategoryOther:
		return true
	}
	return false
}

// SkillLevel is an ordinal proficiency on a 1–4 scale.
type SkillLevel int

// Skill levels.
const (
	LevelLearning SkillLevel = iota + 1
	LevelComfortable
	LevelExperienced
	LevelHighlyExperienced
)

// LevelInfo carries the display mapping for a skill level.
type LevelInfo struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// SkillLevels maps each ordinal to its display label and bar percentage.
var SkillLevels = map[SkillLevel]LevelInfo{
	LevelLearning:          {Label: "Learning", Percent: 25},
	LevelComfortable:       {Label: "Comfortable", Percent: 50},
	LevelExperienced:       {Label: "Experienced", Percent: 75},
	LevelHighlyExperienced: {Label: "Highly Experienced", Percent: 100},
}

// Valid reports whether l is on the known scale.
func (l SkillLevel) Valid() bool {
	_, ok := SkillLevels[l]
	return ok
}

// Info returns the display mapping for l, defaulting to Comfortable for
// out-of-range values so the site never renders an empty bar.
func (l SkillLevel) Info() LevelInfo {
	if info, ok := SkillLevels[l]; ok {
		return info
	}
	return SkillLevels[LevelComfortable]
}

// PersonalInfo is the singleton owner record. Optional link fields use the
// empty string as the absent sentinel and are omitted when serialized.
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
	ResumeURL string `json:"resumeUrl,omitempty"`
}

// Project is one portfolio entry. Collection order is display order.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	ModalContent    string   `json:"modalContent,omitempty"`
	Technologies    []string `json:"technologies"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	WebsiteURL      string   `json:"websiteUrl,omitempty"`
	SteamURL        string   `json:"steamUrl,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Featured        bool     `json:"featured"`
}

// Experience is one work-history entry. An empty EndDate means "current".
type Experience struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate,omitempty"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription,omitempty"`
	LogoURL             string   `json:"logoUrl,omitempty"`
	Technologies        []string `json:"technologies"`
}

// Skill is one entry in the skills grid.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    SkillLevel    `json:"level"`
}

// PortfolioData is the aggregate root: everything the site renders and the
// editor mutates, snapshotted and serialized as one unit.
type PortfolioData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Projects     []Project    `json:"projects"`
	Experience   []Experience `json:"experience"`
	Skills       []Skill      `json:"skills"`
}

// Clone returns a deep copy of d. Technology slices are copied so the clone
// shares no mutable state with the original.
func (d *PortfolioData) Clone() *PortfolioData {
	out := &PortfolioData{
		PersonalInfo: d.PersonalInfo,
		Projects:     make([]Project, len(d.Projects)),
		Experience:   make([]Experience, len(d.Experience)),
		Skills:       make([]Skill, len(d.Skills)),
	}
	for i, p := range d.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		out.Projects[i] = p
	}
	for i, e := range d.Experience {
		e.Technologies = cloneStrings(e.Technologies)
		out.Experience[i] = e
	}
	copy(out.Skills, d.Skills)
	return out
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
