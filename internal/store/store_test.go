package store

import (
	"reflect"
	"testing"

	"github.com/avendel/folio/internal/models"
)

func seed() *models.PortfolioData {
	return &models.PortfolioData{
		PersonalInfo: models.PersonalInfo{
			Name:     "Ada Example",
			Title:    "Engineer",
			Bio:      "bio",
			Location: "Remote",
			Email:    "ada@example.com",
		},
		Projects: []models.Project{
			{ID: "p1", Title: "First", Description: "d", Technologies: []string{"Go"}},
		},
		Experience: []models.Experience{
			{ID: "e1", Title: "Engineer", Company: "Acme", Location: "Remote", StartDate: "2021-01", Description: "d", Technologies: []string{}},
		},
		Skills: []models.Skill{
			{ID: "s1", Name: "Go", Category: models.CategoryBackend, Level: models.LevelExperienced},
		},
	}
}

func TestUpdatePersonalInfo(t *testing.T) {
	s := New(seed())
	if !s.UpdatePersonalInfo("name", "Grace") {
		t.Fatal("known field reported unknown")
	}
	if got := s.Snapshot().PersonalInfo.Name; got != "Grace" {
		t.Errorf("name = %q", got)
	}
}

func TestUpdatePersonalInfoUnknownFieldNoop(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()
	if s.UpdatePersonalInfo("nickname", "x") {
		t.Error("unknown field reported known")
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("unknown field mutated the snapshot")
	}
}

func TestAddDeleteInverse(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()

	id := s.AddProject()
	if n := len(s.Snapshot().Projects); n != 2 {
		t.Fatalf("after add: %d projects", n)
	}
	s.DeleteProject(id)
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("add then delete did not restore projects")
	}

	id = s.AddExperience()
	s.DeleteExperience(id)
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("add then delete did not restore experience")
	}

	id = s.AddSkill()
	s.DeleteSkill(id)
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("add then delete did not restore skills")
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	s := New(seed())
	first := s.AddProject()
	second := s.AddProject()
	if first == second {
		t.Fatalf("ids collide: %s", first)
	}
	projects := s.Snapshot().Projects
	if projects[len(projects)-2].ID != first || projects[len(projects)-1].ID != second {
		t.Error("new projects not appended in creation order")
	}
}

func TestAddProjectDefaults(t *testing.T) {
	s := New(seed())
	id := s.AddProject()
	projects := s.Snapshot().Projects
	p := projects[len(projects)-1]
	if p.ID != id {
		t.Errorf("id = %q, want %q", p.ID, id)
	}
	if p.Featured {
		t.Error("new project should not be featured")
	}
	if p.Technologies == nil || len(p.Technologies) != 0 {
		t.Errorf("technologies = %#v, want empty non-nil", p.Technologies)
	}
}

func TestUpdateIsPartialMerge(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()

	title := "Renamed"
	s.UpdateProject("p1", ProjectPatch{Title: &title})

	got := s.Snapshot().Projects[0]
	want := before.Projects[0]
	want.Title = "Renamed"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("project = %+v, want %+v", got, want)
	}
	// Everything else untouched.
	if !reflect.DeepEqual(s.Snapshot().Experience, before.Experience) {
		t.Error("experience changed by project update")
	}
	if !reflect.DeepEqual(s.Snapshot().Skills, before.Skills) {
		t.Error("skills changed by project update")
	}
}

func TestUpdateParsesTechnologies(t *testing.T) {
	s := New(seed())
	techs := "React, Node.js ,  , TypeScript"
	s.UpdateProject("p1", ProjectPatch{Technologies: &techs})
	got := s.Snapshot().Projects[0].Technologies
	want := []string{"React", "Node.js", "TypeScript"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("technologies = %#v, want %#v", got, want)
	}
}

func TestUpdateMissingIDNoop(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()
	title := "x"
	s.UpdateProject("missing", ProjectPatch{Title: &title})
	s.UpdateExperience("missing", ExperiencePatch{Title: &title})
	s.UpdateSkill("missing", SkillPatch{Name: &title})
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("update with missing id changed the snapshot")
	}
}

func TestDeleteMissingIDNoop(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()
	s.DeleteProject("missing")
	s.DeleteExperience("missing")
	s.DeleteSkill("missing")
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("delete with missing id changed the snapshot")
	}
}

func TestUpdateSkillRejectsInvalidEnum(t *testing.T) {
	s := New(seed())
	badCat := "wizardry"
	badLevel := 9
	s.UpdateSkill("s1", SkillPatch{Category: &badCat, Level: &badLevel})
	sk := s.Snapshot().Skills[0]
	if sk.Category != models.CategoryBackend {
		t.Errorf("category = %q", sk.Category)
	}
	if sk.Level != models.LevelExperienced {
		t.Errorf("level = %d", sk.Level)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := New(seed())
	snap := s.Snapshot()
	title := "changed"
	s.UpdateProject("p1", ProjectPatch{Title: &title})
	if snap.Projects[0].Title != "First" {
		t.Error("earlier snapshot mutated by later edit")
	}
}

func TestSplitTechnologies(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"React, Node.js ,  , TypeScript", []string{"React", "Node.js", "TypeScript"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"solo", []string{"solo"}},
	}
	for _, tc := range cases {
		if got := SplitTechnologies(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitTechnologies(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
