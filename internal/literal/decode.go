package literal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avendel/folio/internal/models"
)

// Unmarshal parses the data-file module text back into a PortfolioData
// value. Everything before the top-level '=' (the module header) is
// ignored, as is a trailing semicolon.
func Unmarshal(data []byte) (*models.PortfolioData, error) {
	src := string(data)
	eq := strings.IndexByte(src, '=')
	if eq < 0 {
		return nil, fmt.Errorf("literal: no top-level assignment found")
	}
	p := &parser{src: src, pos: eq + 1}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("trailing data after literal")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("literal: top-level value is not an object")
	}
	return decodePortfolio(obj)
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("literal: offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (any, error) {
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '\'':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) parseObject() (map[string]any, error) {
	p.pos++ // '{'
	out := make(map[string]any)
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return out, nil
	}
	for {
		p.skipSpace()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errorf("expected ':' after key %q", key)
		}
		p.pos++
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out[key] = val
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
			// Tolerate a trailing comma before the closing brace.
			if p.pos < len(p.src) && p.src[p.pos] == '}' {
				p.pos++
				return out, nil
			}
		case '}':
			p.pos++
			return out, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseArray() ([]any, error) {
	p.pos++ // '['
	out := []any{}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return out, nil
	}
	for {
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, val)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
			if p.pos < len(p.src) && p.src[p.pos] == ']' {
				p.pos++
				return out, nil
			}
		case ']':
			p.pos++
			return out, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

// parseKey accepts either a bare identifier or a quoted string.
func (p *parser) parseKey() (string, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '\'' {
		return p.parseString()
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos], p.pos == start) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected object key")
	}
	return p.src[start:p.pos], nil
}

func isIdentChar(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$' {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

func (p *parser) parseString() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\'':
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", p.errorf("unterminated escape")
			}
			switch e := p.src[p.pos]; e {
			case '\\':
				b.WriteByte('\\')
			case '\'':
				b.WriteByte('\'')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				return "", p.errorf("unknown escape %q", e)
			}
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) parseBool() (bool, error) {
	if strings.HasPrefix(p.src[p.pos:], "true") {
		p.pos += len("true")
		return true, nil
	}
	if strings.HasPrefix(p.src[p.pos:], "false") {
		p.pos += len("false")
		return false, nil
	}
	return false, p.errorf("invalid literal")
}

func (p *parser) parseNumber() (int, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("invalid number %q", p.src[start:p.pos])
	}
	return n, nil
}

func decodePortfolio(m map[string]any) (*models.PortfolioData, error) {
	d := &models.PortfolioData{
		Projects:   []models.Project{},
		Experience: []models.Experience{},
		Skills:     []models.Skill{},
	}

	if pi, ok := m["personalInfo"].(map[string]any); ok {
		d.PersonalInfo = models.PersonalInfo{
			Name:      str(pi, "name"),
			Title:     str(pi, "title"),
			Bio:       str(pi, "bio"),
			Location:  str(pi, "location"),
			Email:     str(pi, "email"),
			Github:    str(pi, "github"),
			Linkedin:  str(pi, "linkedin"),
			Twitter:   str(pi, "twitter"),
			Website:   str(pi, "website"),
			ResumeURL: str(pi, "resumeUrl"),
		}
	}

	for _, v := range arr(m, "projects") {
		pm, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("literal: project entry is not an object")
		}
		d.Projects = append(d.Projects, models.Project{
			ID:              str(pm, "id"),
			Title:           str(pm, "title"),
			Description:     str(pm, "description"),
			LongDescription: str(pm, "longDescription"),
			ModalContent:    str(pm, "modalContent"),
			Technologies:    strSlice(pm, "technologies"),
			GithubURL:       str(pm, "githubUrl"),
			LiveURL:         str(pm, "liveUrl"),
			WebsiteURL:      str(pm, "websiteUrl"),
			SteamURL:        str(pm, "steamUrl"),
			ImageURL:        str(pm, "imageUrl"),
			Featured:        boolean(pm, "featured"),
		})
	}

	for _, v := range arr(m, "experience") {
		em, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("literal: experience entry is not an object")
		}
		d.Experience = append(d.Experience, models.Experience{
			ID:                  str(em, "id"),
			Title:               str(em, "title"),
			Company:             str(em, "company"),
			Location:            str(em, "location"),
			StartDate:           str(em, "startDate"),
			EndDate:             str(em, "endDate"),
			Description:         str(em, "description"),
			DetailedDescription: str(em, "detailedDescription"),
			LogoURL:             str(em, "logoUrl"),
			Technologies:        strSlice(em, "technologies"),
		})
	}

	for _, v := range arr(m, "skills") {
		sm, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("literal: skill entry is not an object")
		}
		d.Skills = append(d.Skills, models.Skill{
			ID:       str(sm, "id"),
			Name:     str(sm, "name"),
			Category: models.SkillCategory(str(sm, "category")),
			Level:    models.SkillLevel(num(sm, "level")),
		})
	}

	return d, nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]any, key string) int {
	n, _ := m[key].(int)
	return n
}

func boolean(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func arr(m map[string]any, key string) []any {
	a, _ := m[key].([]any)
	return a
}

func strSlice(m map[string]any, key string) []string {
	out := []string{}
	for _, v := range arr(m, key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
