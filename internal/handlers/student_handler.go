package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"curriculum-service/internal/models"
	"curriculum-service/internal/store"
	"curriculum-service/utils"
)

type StudentHandler struct {
	Store store.Store
}

func NewStudentHandler(st store.Store) *StudentHandler {
	return &StudentHandler{Store: st}
}

type registerStudentRequest struct {
	StudentID     string   `json:"student_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Grade         string   `json:"grade"`
	Section       string   `json:"section"`
	Semester      string   `json:"semester"`
	Interests     []string `json:"interests"`
	CareerGoals   []string `json:"career_goals"`
	LearningStyle string   `json:"learning_style"`
}

// RegisterStudent creates or replaces a student profile.
func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var req registerStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid student payload", err)
		return
	}

	student := models.NewStudentProfile(req.StudentID, req.Name, req.Grade, req.Section)
	student.Semester = req.Semester
	if req.Interests != nil {
		student.Interests = req.Interests
	}
	if req.CareerGoals != nil {
		student.CareerGoals = req.CareerGoals
	}
	if req.LearningStyle != "" {
		student.LearningStyle = req.LearningStyle
	}

	if err := h.Store.PutStudent(c.Request.Context(), student); err != nil {
		utils.InternalErrorResponse(c, "Failed to store student", err)
		return
	}

	utils.SuccessResponse(c, "Student registered successfully", student)
}

type performanceEntry struct {
	Subject  string   `json:"subject" binding:"required"`
	Score    *float64 `json:"score" binding:"required"`
	TestType string   `json:"test_type"`
}

type updatePerformanceRequest struct {
	StudentID   string             `json:"student_id" binding:"required"`
	Performance []performanceEntry `json:"performance" binding:"required,min=1"`
}

// UpdatePerformance appends score records to a student's history.
func (h *StudentHandler) UpdatePerformance(c *gin.Context) {
	var req updatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid performance payload", err)
		return
	}

	ctx := c.Request.Context()
	student, err := h.Store.GetStudent(ctx, req.StudentID)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFoundResponse(c, "Student not found. Please register first.")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load student", err)
		return
	}

	for _, entry := range req.Performance {
		testType := entry.TestType
		if testType == "" {
			testType = "exam"
		}
		student.UpdatePerformance(entry.Subject, *entry.Score, testType)
	}

	if err := h.Store.PutStudent(ctx, student); err != nil {
		utils.InternalErrorResponse(c, "Failed to store student", err)
		return
	}

	utils.SuccessResponse(c, "Performance updated successfully", student)
}

// GetStudent returns a student profile by id.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.Store.GetStudent(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFoundResponse(c, "Student not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load student", err)
		return
	}
	utils.SuccessResponse(c, "Student found", student)
}
