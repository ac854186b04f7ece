package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okadachi/portfolio-api/internal/models"
)

func testRepo(name string, stars int, updated time.Time) *models.Repository {
	return &models.Repository{
		Name:       name,
		URL:        "https://github.com/octocat/" + name,
		StarsCount: stars,
		UpdatedAt:  updated,
	}
}

func day(n int) time.Time {
	return time.Date(2024, 6, n, 0, 0, 0, 0, time.UTC)
}

func TestFilterActive(t *testing.T) {
	archived := testRepo("old-proj", 50, day(1))
	archived.Archived = true

	repos := []*models.Repository{
		testRepo("tool-x", 2, day(2)),
		archived,
		testRepo("qr-studio", 5, day(3)),
	}

	active := FilterActive(repos)
	require.Len(t, active, 2)
	assert.Equal(t, "tool-x", active[0].Name)
	assert.Equal(t, "qr-studio", active[1].Name)
}

func TestSortByPopularity(t *testing.T) {
	t.Run("stars descending", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("low", 1, day(1)),
			testRepo("high", 10, day(1)),
			testRepo("mid", 5, day(1)),
		}

		sorted := SortByPopularity(repos)
		assert.Equal(t, "high", sorted[0].Name)
		assert.Equal(t, "mid", sorted[1].Name)
		assert.Equal(t, "low", sorted[2].Name)
	})

	t.Run("ties broken by most recent update", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("older", 5, day(1)),
			testRepo("newer", 5, day(9)),
		}

		sorted := SortByPopularity(repos)
		assert.Equal(t, "newer", sorted[0].Name)
		assert.Equal(t, "older", sorted[1].Name)
	})

	t.Run("full ties keep input order", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("first", 5, day(4)),
			testRepo("second", 5, day(4)),
			testRepo("third", 5, day(4)),
		}

		sorted := SortByPopularity(repos)
		assert.Equal(t, "first", sorted[0].Name)
		assert.Equal(t, "second", sorted[1].Name)
		assert.Equal(t, "third", sorted[2].Name)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("low", 1, day(1)),
			testRepo("high", 10, day(1)),
		}

		SortByPopularity(repos)
		assert.Equal(t, "low", repos[0].Name)
		assert.Equal(t, "high", repos[1].Name)
	})
}

func TestPartition(t *testing.T) {
	opts := Options{
		Featured: []string{"qr-studio", "smart-brain", "react-music-player", "dapp-chat"},
		SelfRepo: "octocat.github.io",
		MaxOther: 6,
	}

	t.Run("featured membership in sorted order", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("smart-brain", 20, day(1)),
			testRepo("tool-x", 10, day(1)),
			testRepo("qr-studio", 5, day(1)),
		}

		featured, other := Partition(repos, opts)
		require.Len(t, featured, 2)
		assert.Equal(t, "smart-brain", featured[0].Name)
		assert.Equal(t, "qr-studio", featured[1].Name)
		require.Len(t, other, 1)
		assert.Equal(t, "tool-x", other[0].Name)
	})

	t.Run("self repository excluded from other", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("octocat.github.io", 30, day(1)),
			testRepo("tool-x", 10, day(1)),
		}

		featured, other := Partition(repos, opts)
		assert.Empty(t, featured)
		require.Len(t, other, 1)
		assert.Equal(t, "tool-x", other[0].Name)
	})

	t.Run("self exclusion does not apply to featured", func(t *testing.T) {
		selfFeatured := Options{
			Featured: []string{"octocat.github.io"},
			SelfRepo: "octocat.github.io",
			MaxOther: 6,
		}
		repos := []*models.Repository{
			testRepo("octocat.github.io", 30, day(1)),
		}

		featured, other := Partition(repos, selfFeatured)
		require.Len(t, featured, 1)
		assert.Equal(t, "octocat.github.io", featured[0].Name)
		assert.Empty(t, other)
	})

	t.Run("other view capped", func(t *testing.T) {
		var repos []*models.Repository
		names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		for i, name := range names {
			repos = append(repos, testRepo(name, 10-i, day(1)))
		}

		_, other := Partition(repos, opts)
		require.Len(t, other, 6)
		assert.Equal(t, "a", other[0].Name)
		assert.Equal(t, "f", other[5].Name)
	})

	t.Run("other length is min of cap and candidates", func(t *testing.T) {
		repos := []*models.Repository{
			testRepo("qr-studio", 9, day(1)),
			testRepo("tool-x", 5, day(1)),
			testRepo("tool-y", 3, day(1)),
		}

		_, other := Partition(repos, opts)
		assert.Len(t, other, 2)
	})
}

func TestBuildProjects(t *testing.T) {
	opts := Options{
		Featured: []string{"qr-studio", "smart-brain", "react-music-player", "dapp-chat"},
		SelfRepo: "octocat.github.io",
		MaxOther: 6,
	}

	t.Run("archived repositories appear in no view", func(t *testing.T) {
		archived := testRepo("old-proj", 100, day(9))
		archived.Archived = true

		repos := []*models.Repository{
			testRepo("tool-x", 2, day(2)),
			archived,
			testRepo("qr-studio", 5, day(3)),
		}

		projects := BuildProjects(repos, opts)
		require.Len(t, projects.Featured, 1)
		assert.Equal(t, "qr-studio", projects.Featured[0].Name)
		assert.True(t, projects.Featured[0].Featured)
		require.Len(t, projects.Other, 1)
		assert.Equal(t, "tool-x", projects.Other[0].Name)
		assert.False(t, projects.Other[0].Featured)
	})

	t.Run("empty input yields empty views", func(t *testing.T) {
		projects := BuildProjects(nil, opts)
		assert.Empty(t, projects.Featured)
		assert.Empty(t, projects.Other)
	})

	t.Run("view models carry repository fields", func(t *testing.T) {
		repo := testRepo("tool-x", 7, day(2))
		repo.Description = "A handy tool"
		repo.Homepage = "https://tool-x.dev"
		repo.Language = "Go"
		repo.Topics = []string{"docker"}
		repo.ForksCount = 3

		projects := BuildProjects([]*models.Repository{repo}, opts)
		require.Len(t, projects.Other, 1)
		project := projects.Other[0]
		assert.Equal(t, "A handy tool", project.Description)
		assert.Equal(t, "https://tool-x.dev", project.Homepage)
		assert.Equal(t, "Go", project.Language)
		assert.Equal(t, []string{"docker"}, project.Topics)
		assert.Equal(t, 7, project.Stars)
		assert.Equal(t, 3, project.Forks)
		assert.Equal(t, day(2), project.UpdatedAt)
	})
}
