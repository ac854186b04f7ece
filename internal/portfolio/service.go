package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/okadachi/portfolio-api/internal/config"
	"github.com/okadachi/portfolio-api/internal/models"
	"github.com/okadachi/portfolio-api/internal/pipeline"
	"github.com/okadachi/portfolio-api/internal/skills"
)

// GitHubClient defines the GitHub API surface the service needs
type GitHubClient interface {
	GetUser(ctx context.Context, username string) (*models.Profile, error)
	GetUserRepositories(ctx context.Context, username string) ([]*models.Repository, error)
	GetProfileReadme(ctx context.Context, username string) (string, error)
}

// Service defines the interface for portfolio operations
type Service interface {
	// Refresh runs one fetch cycle. Fetch failures are logged and swallowed;
	// whatever data loaded before keeps serving.
	Refresh(ctx context.Context)

	Portfolio() (*models.Portfolio, bool)
	Profile() (*models.Profile, bool)
	Hero() (*models.Hero, bool)
	About() (*models.About, bool)
	Contact() (*models.Contact, bool)
	Projects() (*models.Projects, bool)
	Skills() ([]models.SkillCategory, bool)
	Status() *models.RefreshStatus
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	client      GitHubClient
	store       Store
	categorizer *skills.Categorizer
	username    string
	refreshCfg  *config.RefreshConfig
	logger      *logrus.Logger
	status      statusTracker
}

// NewService creates a new portfolio service
func NewService(client GitHubClient, store Store, categorizer *skills.Categorizer, username string, refreshCfg *config.RefreshConfig, logger *logrus.Logger) *ServiceImpl {
	return &ServiceImpl{
		client:      client,
		store:       store,
		categorizer: categorizer,
		username:    username,
		refreshCfg:  refreshCfg,
		logger:      logger,
	}
}

// Refresh fetches the profile and the repository list concurrently and
// rebuilds the derived views. The two slots update independently; a failure
// on one side leaves that slot's previous data in place.
func (s *ServiceImpl) Refresh(ctx context.Context) {
	s.status.beginCycle()
	s.logger.WithField("username", s.username).Info("Starting portfolio refresh")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.refreshProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		s.refreshRepositories(ctx)
	}()

	wg.Wait()

	_, profileLoaded := s.store.GetProfileData()
	_, projectsLoaded := s.store.GetProjectData()
	s.status.endCycle(profileLoaded || projectsLoaded)
}

func (s *ServiceImpl) refreshProfile(ctx context.Context) {
	profile, err := s.client.GetUser(ctx, s.username)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch profile, keeping previous data")
		s.status.profileFailed(err)
		return
	}

	s.store.SetProfileData(&ProfileData{
		Profile:   profile,
		About:     s.buildAbout(ctx, profile),
		FetchedAt: time.Now(),
	})
	s.status.profileRefreshed()

	s.logger.WithField("login", profile.Login).Info("Refreshed profile")
}

func (s *ServiceImpl) refreshRepositories(ctx context.Context) {
	repos, err := s.client.GetUserRepositories(ctx, s.username)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch repositories, keeping previous data")
		s.status.repositoriesFailed(err)
		return
	}

	projects := pipeline.BuildProjects(repos, s.pipelineOptions())
	detected := skills.Detect(pipeline.FilterActive(repos))

	s.store.SetProjectData(&ProjectData{
		Repositories: repos,
		Projects:     projects,
		Skills:       s.categorizer.Categorize(detected),
		FetchedAt:    time.Now(),
	})
	s.status.repositoriesRefreshed()

	s.logger.WithFields(logrus.Fields{
		"repositories": len(repos),
		"featured":     len(projects.Featured),
		"other":        len(projects.Other),
		"technologies": len(detected),
	}).Info("Refreshed repositories")
}

func (s *ServiceImpl) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Featured: s.refreshCfg.FeaturedProjects,
		SelfRepo: s.username + ".github.io",
		MaxOther: s.refreshCfg.MaxOtherProjects,
	}
}

// Portfolio returns the full snapshot. It is available as soon as either
// slot has loaded; parts backed by the still empty slot are nil.
func (s *ServiceImpl) Portfolio() (*models.Portfolio, bool) {
	profileData, profileLoaded := s.store.GetProfileData()
	projectData, projectsLoaded := s.store.GetProjectData()
	if !profileLoaded && !projectsLoaded {
		return nil, false
	}

	result := &models.Portfolio{}
	if profileLoaded {
		result.Profile = profileData.Profile
		result.Hero = buildHero(profileData.Profile)
		result.About = profileData.About
		result.Contact = buildContact(profileData.Profile)
		result.UpdatedAt = profileData.FetchedAt
	}
	if projectsLoaded {
		result.Projects = projectData.Projects
		result.Skills = projectData.Skills
		if projectData.FetchedAt.After(result.UpdatedAt) {
			result.UpdatedAt = projectData.FetchedAt
		}
	}
	return result, true
}

// Profile returns the raw profile slot
func (s *ServiceImpl) Profile() (*models.Profile, bool) {
	data, ok := s.store.GetProfileData()
	if !ok {
		return nil, false
	}
	return data.Profile, true
}

// Hero returns the landing-section projection of the profile
func (s *ServiceImpl) Hero() (*models.Hero, bool) {
	data, ok := s.store.GetProfileData()
	if !ok {
		return nil, false
	}
	return buildHero(data.Profile), true
}

// About returns the about section, including the rendered README when one
// was available
func (s *ServiceImpl) About() (*models.About, bool) {
	data, ok := s.store.GetProfileData()
	if !ok {
		return nil, false
	}
	return data.About, true
}

// Contact returns the contact projection of the profile
func (s *ServiceImpl) Contact() (*models.Contact, bool) {
	data, ok := s.store.GetProfileData()
	if !ok {
		return nil, false
	}
	return buildContact(data.Profile), true
}

// Projects returns the featured and other project views
func (s *ServiceImpl) Projects() (*models.Projects, bool) {
	data, ok := s.store.GetProjectData()
	if !ok {
		return nil, false
	}
	return data.Projects, true
}

// Skills returns the categorized skill catalog with evidenced flags
func (s *ServiceImpl) Skills() ([]models.SkillCategory, bool) {
	data, ok := s.store.GetProjectData()
	if !ok {
		return nil, false
	}
	return data.Skills, true
}

// Status returns the refresh state machine and per-slot details
func (s *ServiceImpl) Status() *models.RefreshStatus {
	return s.status.snapshot()
}

func buildHero(profile *models.Profile) *models.Hero {
	name := profile.Name
	if name == "" {
		name = profile.Login
	}
	return &models.Hero{
		Name:      name,
		Tagline:   profile.Bio,
		AvatarURL: profile.AvatarURL,
		GitHubURL: profile.URL,
	}
}

func buildContact(profile *models.Profile) *models.Contact {
	return &models.Contact{
		GitHubURL: profile.URL,
		Blog:      profile.Blog,
		Location:  profile.Location,
	}
}

// statusTracker tracks the refresh state machine. The cycle state and the
// per-slot outcomes are updated from the refresh goroutines and read from
// the status endpoint.
type statusTracker struct {
	mu           sync.RWMutex
	state        string
	lastCycleAt  time.Time
	profile      models.SlotStatus
	repositories models.SlotStatus
}

func (t *statusTracker) beginCycle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = models.RefreshStateFetching
}

func (t *statusTracker) endCycle(anyLoaded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if anyLoaded {
		t.state = models.RefreshStateReady
	} else {
		t.state = models.RefreshStateFailed
	}
	t.lastCycleAt = time.Now()
}

func (t *statusTracker) profileRefreshed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profile.Loaded = true
	t.profile.LastRefresh = time.Now()
	t.profile.LastError = ""
}

func (t *statusTracker) profileFailed(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.profile.LastError = err.Error()
}

func (t *statusTracker) repositoriesRefreshed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.repositories.Loaded = true
	t.repositories.LastRefresh = time.Now()
	t.repositories.LastError = ""
}

func (t *statusTracker) repositoriesFailed(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.repositories.LastError = err.Error()
}

func (t *statusTracker) snapshot() *models.RefreshStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state := t.state
	if state == "" {
		state = models.RefreshStateIdle
	}
	return &models.RefreshStatus{
		State:        state,
		LastCycleAt:  t.lastCycleAt,
		Profile:      t.profile,
		Repositories: t.repositories,
	}
}
