package models

// NavItem is a header navigation entry.
// Label is a copy catalog key, Href an in-page anchor ("/#projects") or a route.
type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// SkillGroup is a titled list of skills on the home page
type SkillGroup struct {
	Title  string   `json:"title" yaml:"title"`
	Skills []string `json:"skills" yaml:"skills"`
}

// ContactLink is an outbound contact channel
type ContactLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Site holds the owner-level content of the home page
type Site struct {
	Owner     string        `json:"owner" yaml:"owner"`
	Monogram  string        `json:"monogram" yaml:"monogram"`
	About     []string      `json:"about" yaml:"about"`
	Skills    []SkillGroup  `json:"skills" yaml:"skills"`
	Email     string        `json:"email" yaml:"email"`
	Contacts  []ContactLink `json:"contacts" yaml:"contacts"`
	Nav       []NavItem     `json:"nav" yaml:"nav"`
	StackLine string        `json:"stack_line" yaml:"stack_line"`
	FocusLine string        `json:"focus_line" yaml:"focus_line"`
}
