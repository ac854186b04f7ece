package pipeline

import (
	"sort"

	"github.com/okadachi/portfolio-api/internal/models"
)

// Options controls how repositories are partitioned into the project views
type Options struct {
	// Featured lists repository names that belong to the featured view
	Featured []string
	// SelfRepo is the owner's GitHub Pages repository, excluded from the other view
	SelfRepo string
	// MaxOther caps the other view
	MaxOther int
}

// FilterActive returns the repositories that are not archived, preserving order
func FilterActive(repos []*models.Repository) []*models.Repository {
	result := make([]*models.Repository, 0, len(repos))
	for _, repo := range repos {
		if !repo.Archived {
			result = append(result, repo)
		}
	}
	return result
}

// SortByPopularity returns a new slice sorted by stars descending, breaking
// ties by most recent update. Repositories equal on both keys keep their
// input order, so the API ordering is stable across refreshes.
func SortByPopularity(repos []*models.Repository) []*models.Repository {
	sorted := make([]*models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StarsCount != sorted[j].StarsCount {
			return sorted[i].StarsCount > sorted[j].StarsCount
		}
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted
}

// Partition splits a sorted repository list into the featured view and the
// other view. Featured membership is by name; the remainder lands in other,
// minus the owner's Pages repository, capped at MaxOther. The self exclusion
// applies to the other view only.
func Partition(repos []*models.Repository, opts Options) (featured, other []*models.Repository) {
	featuredSet := make(map[string]struct{}, len(opts.Featured))
	for _, name := range opts.Featured {
		featuredSet[name] = struct{}{}
	}

	for _, repo := range repos {
		if _, ok := featuredSet[repo.Name]; ok {
			featured = append(featured, repo)
			continue
		}
		if repo.Name == opts.SelfRepo {
			continue
		}
		if len(other) < opts.MaxOther {
			other = append(other, repo)
		}
	}
	return featured, other
}

// BuildProjects runs the full pipeline over a raw repository list: drop
// archived entries, sort, partition, and project into the view models.
func BuildProjects(repos []*models.Repository, opts Options) *models.Projects {
	sorted := SortByPopularity(FilterActive(repos))
	featured, other := Partition(sorted, opts)

	projects := &models.Projects{
		Featured: make([]models.Project, 0, len(featured)),
		Other:    make([]models.Project, 0, len(other)),
	}
	for _, repo := range featured {
		projects.Featured = append(projects.Featured, toProject(repo, true))
	}
	for _, repo := range other {
		projects.Other = append(projects.Other, toProject(repo, false))
	}
	return projects
}

func toProject(repo *models.Repository, featured bool) models.Project {
	return models.Project{
		Name:        repo.Name,
		Description: repo.Description,
		URL:         repo.URL,
		Homepage:    repo.Homepage,
		Language:    repo.Language,
		Topics:      repo.Topics,
		Stars:       repo.StarsCount,
		Forks:       repo.ForksCount,
		Featured:    featured,
		UpdatedAt:   repo.UpdatedAt,
	}
}
