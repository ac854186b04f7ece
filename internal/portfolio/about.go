package portfolio

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"

	"github.com/okadachi/portfolio-api/internal/models"
)

var markdown = goldmark.New()

// buildAbout assembles the about section from the profile plus, when the
// owner has one, the profile README rendered to HTML. The README is best
// effort: fetch or render failures leave the section without it and never
// fail the profile refresh.
func (s *ServiceImpl) buildAbout(ctx context.Context, profile *models.Profile) *models.About {
	about := &models.About{
		Bio:      profile.Bio,
		Location: profile.Location,
		Company:  profile.Company,
	}

	readme, err := s.client.GetProfileReadme(ctx, s.username)
	if err != nil {
		s.logger.WithError(err).Debug("No profile README available")
		return about
	}

	html, err := renderMarkdown(readme)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to render profile README")
		return about
	}
	about.ReadmeHTML = html

	return about
}

func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
