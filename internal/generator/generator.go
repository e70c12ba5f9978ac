// Package generator produces candidate micro-tasks for a break from a
// personalization context. Implementations are best-effort collaborators:
// callers must tolerate errors and empty results.
package generator

import (
	"context"

	"curriculum-service/internal/models"
)

// PersonalizationContext is the aggregated signal handed to a task generator:
// break metadata, academic analysis and student preferences.
type PersonalizationContext struct {
	DurationMinutes  int                      `json:"duration_minutes"`
	BreakType        string                   `json:"break_type"`
	StudentID        string                   `json:"student_id"`
	LearningStyle    string                   `json:"learning_style"`
	Interests        []string                 `json:"interests"`
	CareerGoals      []string                 `json:"career_goals"`
	WeakSubjects     []string                 `json:"weak_subjects"`
	StrongSubjects   []string                 `json:"strong_subjects"`
	ImprovementAreas []models.ImprovementArea `json:"improvement_areas"`
	RecentPoorTopics []string                 `json:"recent_poor_topics"`
	PreviousSubject  string                   `json:"previous_subject,omitempty"`
	PreviousTopic    string                   `json:"previous_topic,omitempty"`
	NextSubject      string                   `json:"next_subject,omitempty"`
	NextTopic        string                   `json:"next_topic,omitempty"`
}

// CandidateTask is a raw task proposal before validation and enrichment.
// Only Title, Description, DurationMinutes, Subject and Difficulty are
// expected; everything else is optional and defaulted downstream.
type CandidateTask struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DurationMinutes   int      `json:"duration_minutes"`
	Subject           string   `json:"subject"`
	Difficulty        string   `json:"difficulty"`
	Instructions      []string `json:"instructions,omitempty"`
	LearningObjective string   `json:"learning_objective,omitempty"`
	EngagementHook    string   `json:"engagement_hook,omitempty"`
	Connection        string   `json:"connection,omitempty"`
	SkillsTargeted    []string `json:"skills_targeted,omitempty"`
	Resources         []string `json:"resources,omitempty"`
}

// TaskGenerator proposes zero or more candidate tasks for a break.
type TaskGenerator interface {
	Generate(ctx context.Context, pctx PersonalizationContext) ([]CandidateTask, error)
}
