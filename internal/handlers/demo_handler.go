package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"curriculum-service/internal/models"
	"curriculum-service/internal/store"
	"curriculum-service/utils"
)

type DemoHandler struct {
	Store store.Store
}

func NewDemoHandler(st store.Store) *DemoHandler {
	return &DemoHandler{Store: st}
}

// DemoSetup seeds a sample student and timetable for manual testing.
func (h *DemoHandler) DemoSetup(c *gin.Context) {
	ctx := c.Request.Context()

	student := models.NewStudentProfile("DEMO001", "Alice Johnson", "10", "A")
	student.Interests = []string{"artificial intelligence", "space science", "mathematics"}
	student.CareerGoals = []string{"become a software engineer", "work at NASA"}
	student.LearningStyle = "visual"
	student.UpdatePerformance("Mathematics", 75, "exam")
	student.UpdatePerformance("Mathematics", 70, "exam")
	student.UpdatePerformance("Physics", 45, "exam")
	student.UpdatePerformance("Physics", 50, "exam")
	student.UpdatePerformance("Chemistry", 85, "exam")
	student.UpdatePerformance("English", 90, "exam")

	if err := h.Store.PutStudent(ctx, student); err != nil {
		utils.InternalErrorResponse(c, "Failed to store demo student", err)
		return
	}

	today := time.Now().Format("2006-01-02")
	timetable := models.NewTimetable("DEMO001", today)
	timetable.AddClass("09:00", "10:00", "Mathematics", "Mr. Smith", "Room 101", "Calculus")
	timetable.AddClass("10:15", "11:15", "Physics", "Mrs. Johnson", "Lab 1", "Thermodynamics")
	timetable.AddClass("11:30", "12:30", "Chemistry", "Dr. Brown", "Lab 2", "Organic Chemistry")
	timetable.AddClass("14:00", "15:00", "English", "Ms. Davis", "Room 205", "Literature")

	if err := h.Store.PutTimetable(ctx, timetable); err != nil {
		utils.InternalErrorResponse(c, "Failed to store demo timetable", err)
		return
	}

	utils.SuccessResponse(c, "Demo data created successfully", gin.H{
		"demo_student_id": "DEMO001",
		"demo_date":       today,
	})
}
