// Package literal implements the portfolio data-file codec: a textual module
// binding a named constant to a nested literal, the same format the site's
// seed file is written in. Marshal and Unmarshal are inverses for any
// well-formed PortfolioData value.
package literal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/avendel/folio/internal/models"
)

const (
	header = "import type { PortfolioData } from '../types';\n\nexport const portfolioData: PortfolioData = "
	footer = ";\n"
)

var bareKeyRe = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)

// field is one key/value pair of an object literal. Order is significant.
type field struct {
	key string
	val any
}

type object []field

// Marshal renders d as the data-file module text.
func Marshal(d *models.PortfolioData) []byte {
	var b strings.Builder
	b.WriteString(header)
	encodeValue(&b, portfolioObject(d), 0)
	b.WriteString(footer)
	return []byte(b.String())
}

func portfolioObject(d *models.PortfolioData) object {
	projects := make([]any, len(d.Projects))
	for i, p := range d.Projects {
		projects[i] = projectObject(p)
	}
	experience := make([]any, len(d.Experience))
	for i, e := range d.Experience {
		experience[i] = experienceObject(e)
	}
	skills := make([]any, len(d.Skills))
	for i, s := range d.Skills {
		skills[i] = skillObject(s)
	}
	return object{
		{"personalInfo", personalInfoObject(d.PersonalInfo)},
		{"projects", projects},
		{"experience", experience},
		{"skills", skills},
	}
}

func personalInfoObject(p models.PersonalInfo) object {
	o := object{
		{"name", p.Name},
		{"title", p.Title},
		{"bio", p.Bio},
		{"location", p.Location},
		{"email", p.Email},
	}
	o = appendOptional(o, "github", p.Github)
	o = appendOptional(o, "linkedin", p.Linkedin)
	o = appendOptional(o, "twitter", p.Twitter)
	o = appendOptional(o, "website", p.Website)
	o = appendOptional(o, "resumeUrl", p.ResumeURL)
	return o
}

func projectObject(p models.Project) object {
	o := object{
		{"id", p.ID},
		{"title", p.Title},
		{"description", p.Description},
	}
	o = appendOptional(o, "longDescription", p.LongDescription)
	o = appendOptional(o, "modalContent", p.ModalContent)
	o = append(o, field{"technologies", stringsToAny(p.Technologies)})
	o = appendOptional(o, "githubUrl", p.GithubURL)
	o = appendOptional(o, "liveUrl", p.LiveURL)
	o = appendOptional(o, "websiteUrl", p.WebsiteURL)
	o = appendOptional(o, "steamUrl", p.SteamURL)
	o = appendOptional(o, "imageUrl", p.ImageURL)
	o = append(o, field{"featured", p.Featured})
	return o
}

func experienceObject(e models.Experience) object {
	o := object{
		{"id", e.ID},
		{"title", e.Title},
		{"company", e.Company},
		{"location", e.Location},
		{"startDate", e.StartDate},
	}
	o = appendOptional(o, "endDate", e.EndDate)
	o = append(o, field{"description", e.Description})
	o = appendOptional(o, "detailedDescription", e.DetailedDescription)
	o = appendOptional(o, "logoUrl", e.LogoURL)
	o = append(o, field{"technologies", stringsToAny(e.Technologies)})
	return o
}

func skillObject(s models.Skill) object {
	return object{
		{"id", s.ID},
		{"name", s.Name},
		{"category", string(s.Category)},
		{"level", int(s.Level)},
	}
}

// appendOptional adds key only when the value is present. Absent optional
// fields are omitted entirely, never emitted as null or ''.
func appendOptional(o object, key, val string) object {
	if val == "" {
		return o
	}
	return append(o, field{key, val})
}

func stringsToAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func encodeValue(b *strings.Builder, v any, depth int) {
	switch val := v.(type) {
	case string:
		b.WriteByte('\'')
		b.WriteString(escapeString(val))
		b.WriteByte('\'')
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case int:
		b.WriteString(strconv.Itoa(val))
	case object:
		encodeObject(b, val, depth)
	case []any:
		encodeArray(b, val, depth)
	default:
		// The input is a closed struct graph, so any other type is a
		// programming error. Fail loudly rather than emit corrupt output.
		panic(fmt.Sprintf("literal: unrepresentable value of type %T", v))
	}
}

func encodeObject(b *strings.Builder, o object, depth int) {
	if len(o) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, f := range o {
		b.WriteString(indent(depth + 1))
		b.WriteString(encodeKey(f.key))
		b.WriteString(": ")
		encodeValue(b, f.val, depth+1)
		if i < len(o)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(indent(depth))
	b.WriteByte('}')
}

func encodeArray(b *strings.Builder, items []any, depth int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, item := range items {
		b.WriteString(indent(depth + 1))
		encodeValue(b, item, depth+1)
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(indent(depth))
	b.WriteByte(']')
}

func encodeKey(key string) string {
	if bareKeyRe.MatchString(key) {
		return key
	}
	return "'" + escapeString(key) + "'"
}

// escapeString escapes in a fixed order (backslash first) so escapes are
// never double-applied.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
