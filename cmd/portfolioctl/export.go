package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/okadachi/portfolio-api/internal/config"
	"github.com/okadachi/portfolio-api/internal/github"
	"github.com/okadachi/portfolio-api/internal/portfolio"
	"github.com/okadachi/portfolio-api/internal/skills"
)

//nolint:gochecknoglobals // Cobra boilerplate
var username string

//nolint:gochecknoglobals // Cobra boilerplate
var output string

//nolint:gochecknoglobals // Cobra boilerplate
var timeout time.Duration

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch GitHub data and write the portfolio snapshot as JSON",
	Long: `Export runs one fetch/derive cycle against the GitHub API and writes the
resulting portfolio snapshot as indented JSON, suitable for static hosting.

Example:
  portfolioctl export --username octocat
  portfolioctl export --username octocat --output - > portfolio.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&username, "username", "", "GitHub username (default from GITHUB_USERNAME)")
	exportCmd.Flags().StringVar(&output, "output", "portfolio.json", "Output file, or - for stdout")
	exportCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Timeout for the GitHub fetch")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	// Same .env the server reads, so both tools see one configuration
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if getVerbose() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	user := username
	if user == "" {
		user = os.Getenv("GITHUB_USERNAME")
	}
	if user == "" {
		err = errors.New("no username given (set --username or GITHUB_USERNAME)")
		return err
	}

	var refreshCfg *config.RefreshConfig
	refreshCfg, err = config.LoadRefresh()
	if err != nil {
		err = errors.Wrap(err, "failed to load refresh configuration")
		return err
	}

	var categorizer *skills.Categorizer
	categorizer, err = skills.NewCategorizer()
	if err != nil {
		err = errors.Wrap(err, "failed to load skill catalog")
		return err
	}

	githubCfg := config.LoadGitHub()
	client := github.NewGitHubClient(githubCfg.Token, logger,
		github.WithBaseURL(githubCfg.APIBaseURL),
		github.WithTimeout(githubCfg.Timeout),
	)

	service := portfolio.NewService(client, portfolio.NewMemoryStore(), categorizer, user, refreshCfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if getVerbose() {
		fmt.Fprintf(os.Stderr, "Fetching GitHub data for %s...\n", user)
	}
	service.Refresh(ctx)

	status := service.Status()
	if status.Profile.LastError != "" {
		fmt.Fprintf(os.Stderr, "Warning: profile fetch failed: %s\n", status.Profile.LastError)
	}
	if status.Repositories.LastError != "" {
		fmt.Fprintf(os.Stderr, "Warning: repository fetch failed: %s\n", status.Repositories.LastError)
	}

	if output == "-" {
		err = portfolio.ExportSnapshot(os.Stdout, service)
		if err != nil {
			err = errors.Wrap(err, "failed to export portfolio")
		}
		return err
	}

	err = portfolio.ExportSnapshotFile(output, service)
	if err != nil {
		err = errors.Wrap(err, "failed to export portfolio")
		return err
	}

	fmt.Printf("Portfolio snapshot saved at: %s\n", output)
	return err
}
