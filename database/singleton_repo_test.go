package database

import (
	"testing"
	"time"

	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

func TestProfileUpsertAge(t *testing.T) {
	db := newTestDB(t)
	repo := db.ProfileRepo()

	profile, err := repo.Get()
	if err != nil {
		t.Fatalf("get empty profile: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected no profile row yet, got %+v", profile)
	}

	if err := repo.UpsertAge(21); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertAge(22); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	profile, err = repo.Get()
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile == nil || profile.Age != 22 {
		t.Fatalf("expected age 22 on the singleton row, got %+v", profile)
	}
	if profile.ID != models.SingletonID {
		t.Fatalf("expected singleton id %d, got %d", models.SingletonID, profile.ID)
	}
}

func TestGitHubStatsUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := db.GitHubStatsRepo()

	stats, err := repo.Get()
	if err != nil {
		t.Fatalf("get empty stats: %v", err)
	}
	if stats != nil {
		t.Fatalf("expected no stats row yet, got %+v", stats)
	}

	first := &models.GitHubStats{Username: "u", PublicRepos: 1, RefreshedAt: time.Now().Add(-2 * time.Hour)}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &models.GitHubStats{Username: "u", PublicRepos: 7, TopLanguage: "Go", RefreshedAt: time.Now()}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	stats, err = repo.Get()
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats == nil || stats.PublicRepos != 7 || stats.TopLanguage != "Go" {
		t.Fatalf("expected the refreshed snapshot, got %+v", stats)
	}
	if stats.ID != models.SingletonID {
		t.Fatalf("expected singleton id %d, got %d", models.SingletonID, stats.ID)
	}
	if stats.Stale(time.Hour) {
		t.Fatal("fresh snapshot should not be stale")
	}
}
