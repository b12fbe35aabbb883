package api

import (
	"github.com/vishaldeshmukh2k6/portfolio-backend/config"
	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, settings config.Settings, mailer services.Mailer, stats *services.StatsService, sessions sessionManager) *routeHandlers {
	return &routeHandlers{
		publicHandler:      newPublicHandler(db, stats, settings.ResumePath),
		authHandler:        newAuthHandler(sessions),
		adminHandler:       newAdminHandler(db, stats),
		contactHandler:     newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), mailer, settings.MailDefaultSender),
		projectHandler:     newProjectHandler(db.ProjectRepo()),
		certificateHandler: newCertificateHandler(db.CertificateRepo()),
		skillHandler:       newSkillHandler(db.SkillRepo()),
		blogPostHandler:    newBlogPostHandler(db.BlogPostRepo()),
		snippetHandler:     newSnippetHandler(db.SnippetRepo()),
		inquiryHandler:     newInquiryHandler(db.InquiryRepo()),
	}
}
