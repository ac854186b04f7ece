package models

import "time"

// Project is the display projection of a Repository.
type Project struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Homepage    string    `json:"homepage,omitempty"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Featured    bool      `json:"featured"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Projects groups the featured and remaining project views.
type Projects struct {
	Featured []Project `json:"featured"`
	Other    []Project `json:"other"`
}

// Hero is the landing-section projection of the profile.
type Hero struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline,omitempty"`
	AvatarURL string `json:"avatar_url"`
	GitHubURL string `json:"github_url"`
}

// About carries the bio and the rendered profile README.
type About struct {
	Bio        string `json:"bio,omitempty"`
	Location   string `json:"location,omitempty"`
	Company    string `json:"company,omitempty"`
	ReadmeHTML string `json:"readme_html,omitempty"`
}

// Contact lists the owner's public contact points.
type Contact struct {
	GitHubURL string `json:"github_url"`
	Blog      string `json:"blog,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Skill is a single catalog entry with its evidence flag.
type Skill struct {
	Name      string `json:"name"`
	Years     int    `json:"years"`
	Level     string `json:"level"`
	Evidenced bool   `json:"evidenced"`
}

// SkillCategory is an ordered group of catalog skills.
type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Portfolio is the full derived snapshot served to the SPA.
type Portfolio struct {
	Profile   *Profile        `json:"profile"`
	Hero      *Hero           `json:"hero"`
	About     *About          `json:"about"`
	Contact   *Contact        `json:"contact"`
	Projects  *Projects       `json:"projects"`
	Skills    []SkillCategory `json:"skills"`
	UpdatedAt time.Time       `json:"updated_at"`
}
