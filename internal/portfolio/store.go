package portfolio

import (
	"sync"
	"time"

	"github.com/okadachi/portfolio-api/internal/models"
)

// ProfileData is the contents of the profile slot
type ProfileData struct {
	Profile   *models.Profile
	About     *models.About
	FetchedAt time.Time
}

// ProjectData is the contents of the repository slot together with the views
// derived from it
type ProjectData struct {
	Repositories []*models.Repository
	Projects     *models.Projects
	Skills       []models.SkillCategory
	FetchedAt    time.Time
}

// Store defines the interface for snapshot storage. The two slots are
// independent: a write to one never touches the other, and every write
// replaces the slot wholesale. Nothing is persisted across restarts.
type Store interface {
	GetProfileData() (*ProfileData, bool)
	SetProfileData(data *ProfileData)
	GetProjectData() (*ProjectData, bool)
	SetProjectData(data *ProjectData)
}

// MemoryStore is the in-memory Store implementation
type MemoryStore struct {
	mu       sync.RWMutex
	profile  *ProfileData
	projects *ProjectData
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetProfileData returns the profile slot, reporting whether it has ever
// been populated
func (s *MemoryStore) GetProfileData() (*ProfileData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, false
	}
	return s.profile, true
}

// SetProfileData replaces the profile slot
func (s *MemoryStore) SetProfileData(data *ProfileData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = data
}

// GetProjectData returns the repository slot, reporting whether it has ever
// been populated
func (s *MemoryStore) GetProjectData() (*ProjectData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.projects == nil {
		return nil, false
	}
	return s.projects, true
}

// SetProjectData replaces the repository slot
func (s *MemoryStore) SetProjectData(data *ProjectData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = data
}
