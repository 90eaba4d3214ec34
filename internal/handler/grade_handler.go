package handler

import (
	"context"
	"net/http"

	"student-grades/internal/model"
)

// GradeStore is the storage the grade handlers need. *service.GradeService
// implements it.
type GradeStore interface {
	CreateGrade(ctx context.Context, input model.GradeInput) (*model.GradeRecord, error)
	ListGrades(ctx context.Context, filter model.GradeFilter) ([]model.GradeRecord, error)
	GetGrade(ctx context.Context, id int64) (*model.GradeRecord, error)
	UpdateGrade(ctx context.Context, id int64, input model.GradeInput) (*model.GradeRecord, error)
	DeleteGrade(ctx context.Context, id int64) error
}

type GradeHandler struct {
	gradeService GradeStore
}

func NewGradeHandler(gradeService GradeStore) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// CreateGrade handles POST /grades/
func (h *GradeHandler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	input, err := decodeGradeInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	grade, err := h.gradeService.CreateGrade(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, grade)
}

// ListGrades handles GET /grades/
func (h *GradeHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	filter, err := gradeFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	grades, err := h.gradeService.ListGrades(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if grades == nil {
		grades = []model.GradeRecord{}
	}

	writeJSON(w, http.StatusOK, grades)
}

// GetGrade handles GET /grades/{id}
func (h *GradeHandler) GetGrade(w http.ResponseWriter, r *http.Request) {
	id, err := gradeID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	grade, err := h.gradeService.GetGrade(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, grade)
}

// UpdateGrade handles PUT /grades/{id}
func (h *GradeHandler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	id, err := gradeID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	input, err := decodeGradeInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	grade, err := h.gradeService.UpdateGrade(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, grade)
}

// DeleteGrade handles DELETE /grades/{id}
func (h *GradeHandler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	id, err := gradeID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.gradeService.DeleteGrade(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Grade deleted successfully!"})
}
