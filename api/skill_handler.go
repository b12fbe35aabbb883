package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// SkillsByCategory groups skills under their category tag for the JSON
// API, keeping each group in proficiency order.
type SkillsByCategory struct {
	Categories map[string][]*models.Skill `json:"categories"`
	Total      int                        `json:"total"`
}

func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		grouped := make(map[string][]*models.Skill)
		for _, skill := range skills {
			grouped[skill.Category] = append(grouped[skill.Category], skill)
		}

		h.responder.WriteJSON(w, SkillsByCategory{Categories: grouped, Total: len(skills)})
	}
}

// createSkill range-checks proficiency and experience; any violation
// rejects the whole create.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseSkillForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := models.Skill{
			Name:            form.Name,
			Category:        form.Category,
			Proficiency:     form.Proficiency,
			YearsExperience: form.YearsExperience,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		if _, err := h.skillRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}

		if err := h.skillRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
