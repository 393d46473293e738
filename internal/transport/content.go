package transport

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/schema"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Projects.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var in project.Project
	if !s.decode(w, r, schema.Project, &in) {
		return
	}
	created, err := s.svc.Projects.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var in project.Project
	if !s.decode(w, r, schema.Project, &in) {
		return
	}
	in.ID = id
	if err := s.svc.Projects.Update(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Projects.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listExperiences(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Experiences.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createExperience(w http.ResponseWriter, r *http.Request) {
	var in experience.Experience
	if !s.decode(w, r, schema.Experience, &in) {
		return
	}
	created, err := s.svc.Experiences.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var in experience.Experience
	if !s.decode(w, r, schema.Experience, &in) {
		return
	}
	in.ID = id
	if err := s.svc.Experiences.Update(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listSkills(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Skills.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createSkill(w http.ResponseWriter, r *http.Request) {
	var in skill.Skill
	if !s.decode(w, r, schema.Skill, &in) {
		return
	}
	created, err := s.svc.Skills.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var in skill.Skill
	if !s.decode(w, r, schema.Skill, &in) {
		return
	}
	in.ID = id
	if err := s.svc.Skills.Update(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) deleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Skills.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listGadgets(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Gadgets.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createGadget(w http.ResponseWriter, r *http.Request) {
	var in gadget.Gadget
	if !s.decode(w, r, schema.Gadget, &in) {
		return
	}
	created, err := s.svc.Gadgets.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateGadget(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var in gadget.Gadget
	if !s.decode(w, r, schema.Gadget, &in) {
		return
	}
	in.ID = id
	if err := s.svc.Gadgets.Update(r.Context(), in); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) deleteGadget(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Gadgets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
