package skills

import "github.com/okadachi/portfolio-api/internal/models"

// TechSet is a set of canonical skill names detected from repositories
type TechSet map[string]struct{}

// Has reports whether the canonical skill name is in the set
func (s TechSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts a canonical skill name into the set
func (s TechSet) Add(name string) {
	s[name] = struct{}{}
}

// topicSkills maps repository topic tags to canonical catalog names. Lookups
// are exact and case sensitive; tags without an entry are ignored so that
// arbitrary repository tags never invent catalog entries.
var topicSkills = map[string]string{
	"react":          "React.js",
	"reactjs":        "React.js",
	"typescript":     "TypeScript",
	"javascript":     "JavaScript",
	"nodejs":         "Node.js",
	"node-js":        "Node.js",
	"python":         "Python",
	"docker":         "Docker",
	"kubernetes":     "Kubernetes",
	"aws":            "AWS",
	"gcp":            "Google Cloud",
	"postgresql":     "PostgreSQL",
	"mysql":          "MySQL",
	"redis":          "Redis",
	"graphql":        "GraphQL",
	"rest-api":       "REST APIs",
	"restful-api":    "REST APIs",
	"jwt":            "JWT",
	"oauth":          "OAuth 2.0",
	"oauth2":         "OAuth 2.0",
	"tailwindcss":    "Tailwind CSS",
	"tailwind-css":   "Tailwind CSS",
	"tailwind":       "Tailwind CSS",
	"nextjs":         "Next.js",
	"next-js":        "Next.js",
	"jest":           "Jest/Cypress",
	"cypress":        "Jest/Cypress",
	"testing":        "Jest/Cypress",
	"webpack":        "Webpack/Vite",
	"vite":           "Webpack/Vite",
	"sass":           "CSS/SCSS",
	"scss":           "CSS/SCSS",
	"css":            "CSS/SCSS",
	"github-actions": "GitHub Actions",
	"ci-cd":          "GitHub Actions",
	"eslint":         "ESLint/Prettier",
	"prettier":       "ESLint/Prettier",
}

// Detect accumulates the technologies evidenced by the given repositories:
// the primary language verbatim when present, plus the canonical name for
// every mapped topic tag. Ordering of repositories and topics does not
// affect the result, and repeated evidence collapses into one entry.
func Detect(repos []*models.Repository) TechSet {
	detected := make(TechSet)
	for _, repo := range repos {
		if repo.Language != "" {
			detected.Add(repo.Language)
		}
		for _, topic := range repo.Topics {
			if skill, ok := topicSkills[topic]; ok {
				detected.Add(skill)
			}
		}
	}
	return detected
}
