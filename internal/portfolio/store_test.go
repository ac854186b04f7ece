package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okadachi/portfolio-api/internal/models"
)

func TestMemoryStore(t *testing.T) {
	t.Run("empty slots report not loaded", func(t *testing.T) {
		store := NewMemoryStore()

		_, ok := store.GetProfileData()
		assert.False(t, ok)
		_, ok = store.GetProjectData()
		assert.False(t, ok)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		store := NewMemoryStore()
		store.SetProfileData(&ProfileData{
			Profile:   &models.Profile{Login: "octocat"},
			FetchedAt: time.Now(),
		})

		data, ok := store.GetProfileData()
		require.True(t, ok)
		assert.Equal(t, "octocat", data.Profile.Login)
	})

	t.Run("writes replace the slot wholesale", func(t *testing.T) {
		store := NewMemoryStore()
		store.SetProjectData(&ProjectData{
			Repositories: []*models.Repository{{Name: "one"}, {Name: "two"}},
		})
		store.SetProjectData(&ProjectData{
			Repositories: []*models.Repository{{Name: "three"}},
		})

		data, ok := store.GetProjectData()
		require.True(t, ok)
		require.Len(t, data.Repositories, 1)
		assert.Equal(t, "three", data.Repositories[0].Name)
	})

	t.Run("slots are independent", func(t *testing.T) {
		store := NewMemoryStore()
		store.SetProfileData(&ProfileData{
			Profile: &models.Profile{Login: "octocat"},
		})

		_, ok := store.GetProjectData()
		assert.False(t, ok)

		store.SetProjectData(&ProjectData{})
		data, ok := store.GetProfileData()
		require.True(t, ok)
		assert.Equal(t, "octocat", data.Profile.Login)
	})
}
