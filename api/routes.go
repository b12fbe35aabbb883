package api

import (
	"github.com/go-chi/chi/v5"
)

// Per-route-group request ceilings, matching the limits the site has
// always run with. The global ceilings live with the router setup.
const (
	contactPerMinute = 5
	loginPerMinute   = 10
	apiPerHour       = 100
	statsPerHour     = 50
)

// setupRoutes wires every route group: public pages, the contact
// pipeline, the login flow and the session-guarded admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, sessions sessionManager) {
	contactLimiter := perMinute(contactPerMinute, "5 per minute")
	loginLimiter := perMinute(loginPerMinute, "10 per minute")
	apiLimiter := perHour(apiPerHour, "100 per hour")
	statsLimiter := perHour(statsPerHour, "50 per hour")

	// Public pages
	r.Group(func(r chi.Router) {
		r.Get("/", handlers.publicHandler.home())
		r.Get("/blog", handlers.blogPostHandler.listPosts())
		r.Get("/blog/{slug}", handlers.blogPostHandler.getPost())
		r.Get("/snippets", handlers.snippetHandler.listSnippets())
		r.Get("/resume", handlers.publicHandler.downloadResume())
		r.Get("/healthz", handlers.publicHandler.healthz())
	})

	// Contact pipeline
	r.Group(func(r chi.Router) {
		r.Use(contactLimiter.middleware)
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Post("/product-message", handlers.contactHandler.submitProductMessage())
	})

	// JSON APIs
	r.Group(func(r chi.Router) {
		r.Use(apiLimiter.middleware)
		r.Get("/api/projects", handlers.projectHandler.listProjects())
		r.Get("/api/skills", handlers.skillHandler.listSkills())
	})
	r.Group(func(r chi.Router) {
		r.Use(statsLimiter.middleware)
		r.Get("/api/github-stats", handlers.publicHandler.githubStats())
	})

	// Login flow
	r.Group(func(r chi.Router) {
		r.Use(loginLimiter.middleware)
		r.Get("/login", handlers.authHandler.loginPage())
		r.Post("/login", handlers.authHandler.login())
	})
	r.Get("/logout", handlers.authHandler.logout())

	// Admin surface, every route behind the session guard
	r.Route("/admin", func(r chi.Router) {
		r.Use(sessions.requireAdmin)

		r.Get("/", handlers.adminHandler.dashboard())
		r.Post("/age", handlers.adminHandler.updateAge())
		r.Post("/github-stats/refresh", handlers.adminHandler.refreshStats())

		r.Post("/project", handlers.projectHandler.createProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/certificate", handlers.certificateHandler.createCertificate())
		r.Delete("/certificate/{certificateID}", handlers.certificateHandler.deleteCertificate())

		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		r.Post("/blog-post", handlers.blogPostHandler.createPost())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deletePost())

		r.Post("/snippet", handlers.snippetHandler.createSnippet())
		r.Delete("/snippet/{snippetID}", handlers.snippetHandler.deleteSnippet())

		r.Get("/inquiries", handlers.inquiryHandler.listInquiries())
		r.Post("/inquiry/{inquiryID}/status", handlers.inquiryHandler.updateStatus())
		r.Delete("/inquiry/{inquiryID}", handlers.inquiryHandler.deleteInquiry())

		r.Delete("/product-message/{messageID}", handlers.adminHandler.deleteProductMessage())
	})
}
