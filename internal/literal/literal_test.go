package literal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/avendel/folio/internal/models"
)

func sampleData() *models.PortfolioData {
	return &models.PortfolioData{
		PersonalInfo: models.PersonalInfo{
			Name:     "Ada Example",
			Title:    "Software Engineer",
			Bio:      "Builds things.\nSometimes ships them.",
			Location: "Rotterdam, NL",
			Email:    "ada@example.com",
			Github:   "https://github.com/ada",
		},
		Projects: []models.Project{
			{
				ID:           "1700000000001",
				Title:        "Tracer",
				Description:  "A 'toy' ray tracer",
				Technologies: []string{"Go", "WebGL"},
				GithubURL:    "https://github.com/ada/tracer",
				Featured:     true,
			},
			{
				ID:           "1700000000002",
				Title:        "Empty tech",
				Description:  "No stack listed",
				Technologies: []string{},
			},
		},
		Experience: []models.Experience{
			{
				ID:           "1700000000003",
				Title:        "Engineer",
				Company:      "Acme",
				Location:     "Remote",
				StartDate:    "2021-03",
				Description:  "Did engineering",
				Technologies: []string{"Go"},
			},
		},
		Skills: []models.Skill{
			{ID: "1700000000004", Name: "Go", Category: models.CategoryBackend, Level: models.LevelExperienced},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleData()
	text := Marshal(want)
	got, err := Unmarshal(text)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestRoundTripOptionalFieldsStayAbsent(t *testing.T) {
	d := sampleData()
	d.Experience[0].EndDate = "" // current position

	text := string(Marshal(d))
	if strings.Contains(text, "endDate") {
		t.Error("absent endDate should be omitted from output")
	}
	if strings.Contains(text, "null") {
		t.Error("output must never contain null")
	}

	got, err := Unmarshal([]byte(text))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Experience[0].EndDate != "" {
		t.Errorf("endDate reappeared as %q", got.Experience[0].EndDate)
	}
}

func TestEscapingRoundTrip(t *testing.T) {
	tricky := "It's a \"test\"\nline2\twith\\backslash\rand return"
	d := sampleData()
	d.PersonalInfo.Bio = tricky

	got, err := Unmarshal(Marshal(d))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.PersonalInfo.Bio != tricky {
		t.Errorf("bio = %q, want %q", got.PersonalInfo.Bio, tricky)
	}
}

func TestEscapeOrder(t *testing.T) {
	// A literal backslash-n in the input must not collapse into a newline.
	in := `already \n escaped`
	d := sampleData()
	d.PersonalInfo.Bio = in

	got, err := Unmarshal(Marshal(d))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.PersonalInfo.Bio != in {
		t.Errorf("bio = %q, want %q", got.PersonalInfo.Bio, in)
	}
}

func TestEmptyCollectionsInline(t *testing.T) {
	text := string(Marshal(sampleData()))
	if !strings.Contains(text, "technologies: []") {
		t.Error("empty array should render inline as []")
	}
}

func TestModuleHeader(t *testing.T) {
	text := string(Marshal(sampleData()))
	if !strings.HasPrefix(text, "import type { PortfolioData }") {
		t.Errorf("missing module header: %q", text[:40])
	}
	if !strings.Contains(text, "export const portfolioData: PortfolioData = {") {
		t.Error("missing constant binding")
	}
	if !strings.HasSuffix(text, ";\n") {
		t.Error("module should end with a semicolon and newline")
	}
}

func TestQuotedKeys(t *testing.T) {
	if got := encodeKey("valid_key$1"); got != "valid_key$1" {
		t.Errorf("bare key quoted: %q", got)
	}
	if got := encodeKey("not-bare"); got != "'not-bare'" {
		t.Errorf("non-identifier key not quoted: %q", got)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no assignment", "just some text"},
		{"unterminated object", "x = {"},
		{"unterminated string", "x = { a: 'oops }"},
		{"bad escape", `x = { a: '\q' }`},
		{"trailing garbage", "x = {}; extra"},
		{"top-level array", "x = [];"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.in)); err == nil {
				t.Errorf("expected error for %q", tc.in)
			}
		})
	}
}

func TestUnmarshalToleratesTrailingCommas(t *testing.T) {
	in := "x = { personalInfo: { name: 'A', title: 'B', bio: '', location: '', email: '', }, projects: [], experience: [], skills: [], };"
	got, err := Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.PersonalInfo.Name != "A" {
		t.Errorf("name = %q", got.PersonalInfo.Name)
	}
}
