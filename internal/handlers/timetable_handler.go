package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"curriculum-service/internal/models"
	"curriculum-service/internal/store"
	"curriculum-service/utils"
)

type TimetableHandler struct {
	Store store.Store
}

func NewTimetableHandler(st store.Store) *TimetableHandler {
	return &TimetableHandler{Store: st}
}

type classEntryRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	Topic     string `json:"topic"`
}

type setTimetableRequest struct {
	StudentID string              `json:"student_id" binding:"required"`
	Date      string              `json:"date"`
	Classes   []classEntryRequest `json:"classes" binding:"required,min=1"`
}

// SetTimetable stores a per-student timetable for a date.
func (h *TimetableHandler) SetTimetable(c *gin.Context) {
	var req setTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid timetable payload", err)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	timetable := models.NewTimetable(req.StudentID, date)
	for _, class := range req.Classes {
		timetable.AddClass(class.StartTime, class.EndTime, class.Subject, class.Teacher, class.Room, class.Topic)
	}

	if err := h.Store.PutTimetable(c.Request.Context(), timetable); err != nil {
		utils.InternalErrorResponse(c, "Failed to store timetable", err)
		return
	}

	utils.SuccessResponse(c, "Timetable set successfully", timetable)
}

type setSectionTimetableRequest struct {
	Semester string              `json:"semester" binding:"required"`
	Section  string              `json:"section" binding:"required"`
	Date     string              `json:"date"`
	Classes  []classEntryRequest `json:"classes" binding:"required,min=1"`
}

// SetSectionTimetable stores the shared timetable for a (semester, section)
// pair, used when a student has no personal timetable.
func (h *TimetableHandler) SetSectionTimetable(c *gin.Context) {
	var req setSectionTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid section timetable payload", err)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	timetable := models.NewTimetable("", date)
	for _, class := range req.Classes {
		timetable.AddClass(class.StartTime, class.EndTime, class.Subject, class.Teacher, class.Room, class.Topic)
	}

	if err := h.Store.PutSectionTimetable(c.Request.Context(), req.Semester, req.Section, timetable); err != nil {
		utils.InternalErrorResponse(c, "Failed to store section timetable", err)
		return
	}

	utils.SuccessResponse(c, "Section timetable set successfully", timetable)
}
