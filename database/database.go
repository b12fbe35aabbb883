package database

import (
	"context"

	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	certificateRepo    *CertificateRepo
	skillRepo          *SkillRepo
	blogPostRepo       *BlogPostRepo
	snippetRepo        *SnippetRepo
	inquiryRepo        *InquiryRepo
	visitorLogRepo     *VisitorLogRepo
	productMessageRepo *ProductMessageRepo
	profileRepo        *ProfileRepo
	githubStatsRepo    *GitHubStatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		certificateRepo:    NewCertificateRepo(db),
		skillRepo:          NewSkillRepo(db),
		blogPostRepo:       NewBlogPostRepo(db),
		snippetRepo:        NewSnippetRepo(db),
		inquiryRepo:        NewInquiryRepo(db),
		visitorLogRepo:     NewVisitorLogRepo(db),
		productMessageRepo: NewProductMessageRepo(db),
		profileRepo:        NewProfileRepo(db),
		githubStatsRepo:    NewGitHubStatsRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Certificate{},
		&models.Skill{},
		&models.BlogPost{},
		&models.CodeSnippet{},
		&models.ContactInquiry{},
		&models.VisitorLog{},
		&models.ProductMessage{},
		&models.Profile{},
		&models.GitHubStats{},
	)
}

// Ping verifies the underlying connection is still usable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) SnippetRepo() *SnippetRepo {
	return d.snippetRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

func (d Database) VisitorLogRepo() *VisitorLogRepo {
	return d.visitorLogRepo
}

func (d Database) ProductMessageRepo() *ProductMessageRepo {
	return d.productMessageRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) GitHubStatsRepo() *GitHubStatsRepo {
	return d.githubStatsRepo
}
