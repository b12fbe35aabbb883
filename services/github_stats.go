package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

const (
	// StatsTTL is how long a snapshot stays fresh.
	StatsTTL = time.Hour

	statsFetchTimeout = 10 * time.Second
	statsUserAgent    = "portfolio-backend"
	maxReposPerFetch  = 100
)

// githubUser mirrors the fields we read from GET /users/{username}.
type githubUser struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`
}

// githubRepo mirrors the fields we read from GET /users/{username}/repos.
type githubRepo struct {
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
}

// StatsService keeps the singleton GitHub statistics snapshot fresh on a
// time-to-live basis, degrading to stale or default data when the API is
// unreachable.
type StatsService struct {
	username string
	repo     *database.GitHubStatsRepo
	client   *http.Client
	baseURL  string
	logger   zerolog.Logger
}

func NewStatsService(username string, repo *database.GitHubStatsRepo) *StatsService {
	return &StatsService{
		username: username,
		repo:     repo,
		client:   &http.Client{Timeout: statsFetchTimeout},
		baseURL:  "https://api.github.com",
		logger:   log.With().Str("service", "githubStats").Logger(),
	}
}

// WithBaseURL points the service at a different API root. Used by tests.
func (s *StatsService) WithBaseURL(baseURL string) *StatsService {
	s.baseURL = baseURL
	return s
}

// Current returns the snapshot to display, refreshing first when none
// exists or the stored one has outlived its TTL. A failed refresh falls
// back to the stale row, or to the default snapshot when there is no row
// at all; Current only errors when the database itself fails.
func (s *StatsService) Current() (*models.GitHubStats, error) {
	stats, err := s.repo.Get()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "github stats", err)
	}
	if stats != nil && !stats.Stale(StatsTTL) {
		return stats, nil
	}

	refreshed, err := s.Refresh()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Stats refresh failed, serving cached snapshot")
		if stats != nil {
			return stats, nil
		}
		// Refresh wrote the default snapshot before reporting failure.
		return s.repo.Get()
	}
	return refreshed, nil
}

// Refresh fetches the account profile and repositories, derives the
// aggregate counts and upserts the snapshot. On failure it writes the
// default snapshot if no row exists yet and reports the fetch error;
// an existing row is left untouched.
func (s *StatsService) Refresh() (*models.GitHubStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), statsFetchTimeout)
	defer cancel()

	var (
		user  githubUser
		repos []githubRepo
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.fetchJSON(ctx, fmt.Sprintf("%s/users/%s", s.baseURL, s.username), &user)
	})
	g.Go(func() error {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=%d", s.baseURL, s.username, maxReposPerFetch)
		return s.fetchJSON(ctx, url, &repos)
	})
	if err := g.Wait(); err != nil {
		s.ensureDefault()
		return nil, errs.NewStatsFetchError("fetch", err)
	}

	stats := s.aggregate(user, repos)
	if err := s.repo.Upsert(stats); err != nil {
		return nil, errs.NewDatabaseError("upsert", "github stats", err)
	}
	s.logger.Info().
		Int("repos", stats.PublicRepos).
		Int("stars", stats.TotalStars).
		Str("topLanguage", stats.TopLanguage).
		Msg("GitHub stats refreshed")
	return stats, nil
}

func (s *StatsService) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", statsUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API returned status %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// aggregate sums stars and forks and picks the most frequent repository
// language, first-encountered winning ties.
func (s *StatsService) aggregate(user githubUser, repos []githubRepo) *models.GitHubStats {
	stats := &models.GitHubStats{
		Username:    s.username,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
		RefreshedAt: time.Now(),
	}

	counts := make(map[string]int)
	var order []string
	for _, repo := range repos {
		stats.TotalStars += repo.StargazersCount
		stats.TotalForks += repo.ForksCount
		if repo.Language == "" {
			continue
		}
		if _, seen := counts[repo.Language]; !seen {
			order = append(order, repo.Language)
		}
		counts[repo.Language]++
	}

	best := 0
	for _, lang := range order {
		if counts[lang] > best {
			best = counts[lang]
			stats.TopLanguage = lang
		}
	}
	if len(counts) > 0 {
		if raw, err := json.Marshal(counts); err == nil {
			stats.Languages = datatypes.JSON(raw)
		}
	}
	return stats
}

// ensureDefault writes the hand-picked placeholder snapshot, but only
// when no snapshot exists at all. Stale-but-present data always wins
// over defaults.
func (s *StatsService) ensureDefault() {
	existing, err := s.repo.Get()
	if err != nil || existing != nil {
		return
	}
	def := &models.GitHubStats{
		Username:    s.username,
		PublicRepos: 12,
		Followers:   10,
		Following:   8,
		TotalStars:  25,
		TotalForks:  6,
		TopLanguage: "Python",
		RefreshedAt: time.Now(),
	}
	if err := s.repo.Upsert(def); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist default stats snapshot")
	}
}
