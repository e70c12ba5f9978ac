package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"curriculum-service/internal/curriculum"
	"curriculum-service/utils"
)

type CurriculumHandler struct {
	Generator *curriculum.Generator
}

func NewCurriculumHandler(g *curriculum.Generator) *CurriculumHandler {
	return &CurriculumHandler{Generator: g}
}

type generateCurriculumRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Date      string `json:"date"`
}

// GenerateCurriculum builds the personalized daily curriculum for a student.
func (h *CurriculumHandler) GenerateCurriculum(c *gin.Context) {
	var req generateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid curriculum request", err)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	daily, err := h.Generator.Generate(c.Request.Context(), req.StudentID, date)
	if errors.Is(err, curriculum.ErrStudentNotFound) {
		utils.NotFoundResponse(c, "Student not found. Please register first.")
		return
	}
	if errors.Is(err, curriculum.ErrScheduleNotFound) {
		utils.NotFoundResponse(c, "Timetable not found. Please set timetable first.")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to generate curriculum", err)
		return
	}

	utils.SuccessResponse(c, "Curriculum generated successfully", gin.H{
		"curriculum":   daily,
		"generated_at": time.Now(),
	})
}
