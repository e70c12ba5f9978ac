package models

import "time"

const (
	BreakShort  = "short"
	BreakMedium = "medium"
	BreakLunch  = "lunch"
	BreakLong   = "long"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Gamification struct {
	Points         int      `bson:"points" json:"points"`
	Badges         []string `bson:"badges" json:"badges"`
	StreakBonus    bool     `bson:"streak_bonus" json:"streak_bonus"`
	ChallengeLevel string   `bson:"challenge_level" json:"challenge_level"`
}

// MicroTask is a short learning activity sized to fit inside one break period.
// Tasks are immutable once attached to a break.
type MicroTask struct {
	ID                    string       `bson:"_id" json:"task_id"`
	Title                 string       `bson:"title" json:"title"`
	Description           string       `bson:"description" json:"description"`
	DurationMinutes       int          `bson:"duration_minutes" json:"duration_minutes"`
	Difficulty            string       `bson:"difficulty" json:"difficulty"`
	Subject               string       `bson:"subject" json:"subject"`
	SkillsTargeted        []string     `bson:"skills_targeted" json:"skills_targeted"`
	LearningObjectives    []string     `bson:"learning_objectives" json:"learning_objectives"`
	Instructions          []string     `bson:"instructions" json:"instructions"`
	Resources             []string     `bson:"resources" json:"resources"`
	EngagementHook        string       `bson:"engagement_hook,omitempty" json:"engagement_hook,omitempty"`
	Connection            string       `bson:"connection,omitempty" json:"connection,omitempty"`
	PersonalizationReason string       `bson:"personalization_reason" json:"personalization_reason"`
	Gamification          Gamification `bson:"gamification" json:"gamification"`
	SuccessCriteria       []string     `bson:"success_criteria" json:"success_criteria"`
	CreatedAt             time.Time    `bson:"created_at" json:"created_at"`
}

// BreakPeriod is a gap between two consecutive classes long enough to host
// learning activities. DurationMinutes is always end minus start and positive.
type BreakPeriod struct {
	StartTime       string      `bson:"start_time" json:"start_time"`
	EndTime         string      `bson:"end_time" json:"end_time"`
	DurationMinutes int         `bson:"duration_minutes" json:"duration_minutes"`
	BreakType       string      `bson:"break_type" json:"break_type"`
	PreviousClass   *ClassEntry `bson:"previous_class,omitempty" json:"previous_class,omitempty"`
	NextClass       *ClassEntry `bson:"next_class,omitempty" json:"next_class,omitempty"`
	AssignedTasks   []MicroTask `bson:"assigned_tasks" json:"assigned_tasks"`
}

type DailyCurriculum struct {
	StudentID             string        `bson:"student_id" json:"student_id"`
	Date                  string        `bson:"date" json:"date"`
	BreakPeriods          []BreakPeriod `bson:"break_periods" json:"break_periods"`
	TotalTasks            int           `bson:"total_tasks" json:"total_tasks"`
	EstimatedLearningTime int           `bson:"estimated_learning_time" json:"estimated_learning_time"`
	SubjectsCovered       []string      `bson:"subjects_covered" json:"subjects_covered"`
	GeneratedAt           time.Time     `bson:"generated_at" json:"generated_at"`
}

func NewDailyCurriculum(studentID, date string) *DailyCurriculum {
	return &DailyCurriculum{
		StudentID:       studentID,
		Date:            date,
		BreakPeriods:    []BreakPeriod{},
		SubjectsCovered: []string{},
		GeneratedAt:     time.Now(),
	}
}

// AddBreakPeriod appends a break with its finalized tasks and updates the
// derived totals incrementally.
func (d *DailyCurriculum) AddBreakPeriod(bp BreakPeriod) {
	d.BreakPeriods = append(d.BreakPeriods, bp)
	d.TotalTasks += len(bp.AssignedTasks)
	for _, task := range bp.AssignedTasks {
		d.EstimatedLearningTime += task.DurationMinutes
		if task.Subject != "" {
			d.addSubject(task.Subject)
		}
	}
}

func (d *DailyCurriculum) addSubject(subject string) {
	for _, s := range d.SubjectsCovered {
		if s == subject {
			return
		}
	}
	d.SubjectsCovered = append(d.SubjectsCovered, subject)
}
