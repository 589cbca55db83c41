package mcpserver

// DataFormatContract describes the portfolio data shapes for LLM consumers
// driving the editor tools.
const DataFormatContract = `# Folio Portfolio Data Format

The portfolio is one aggregate with a personal-info record and three ordered
collections. Entry ids are assigned at creation time and never change.

## personalInfo

Fields: name, title, bio, location, email (always present);
github, linkedin, twitter, website, resumeUrl (optional links).

## projects

Fields: id, title, description, featured (boolean);
longDescription, modalContent, githubUrl, liveUrl, websiteUrl, steamUrl,
imageUrl (optional); technologies (ordered list of names).

## experience

Fields: id, title, company, location, startDate, description;
endDate (empty means the position is current), detailedDescription, logoUrl
(optional); technologies (ordered list of names).

## skills

Fields: id, name, category, level.
category is one of: frontend, backend, database, tools, other.
level is 1 (Learning), 2 (Comfortable), 3 (Experienced),
4 (Highly Experienced).

## Rules

1. **Patches are shallow merges.** Only the fields present in a patch change;
   the technologies field is a comma-separated string that replaces the whole
   list (for example "Go, chi, PostgreSQL").
2. **Invalid categories and levels are ignored**, keeping the enums closed.
3. **Edits live in memory** until save_portfolio runs. A save writes through
   the local save server, or falls back to the clipboard when it is down.
4. **New entries get placeholder content** — patch them right after adding.
`
