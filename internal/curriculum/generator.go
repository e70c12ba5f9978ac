// Package curriculum assembles a student's daily micro-learning plan: it runs
// the schedule and performance analyzers, asks the task generator for
// candidates per break, validates them against the break's time budget and
// enriches the survivors with personalization metadata.
package curriculum

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"curriculum-service/internal/generator"
	"curriculum-service/internal/models"
	"curriculum-service/internal/performance"
	"curriculum-service/internal/schedule"
	"curriculum-service/internal/store"
)

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrScheduleNotFound = errors.New("schedule not found")
)

const (
	// maxTasksPerBreak caps how many candidates one break accepts.
	maxTasksPerBreak = 2
	// bufferMinutes is deducted from every break before tasks are fitted.
	bufferMinutes = 2
	// minFallbackMinutes is the smallest budget worth a synthesized task.
	minFallbackMinutes = 5
	// defaultTaskMinutes is assumed for candidates without a duration.
	defaultTaskMinutes = 10
)

var difficultyMultipliers = map[string]float64{
	models.DifficultyEasy:   1.0,
	models.DifficultyMedium: 1.5,
	models.DifficultyHard:   2.0,
}

type Generator struct {
	schedules   *schedule.Analyzer
	performance *performance.Analyzer
	tasks       generator.TaskGenerator
	store       store.Store
}

func NewGenerator(schedules *schedule.Analyzer, perf *performance.Analyzer, tasks generator.TaskGenerator, st store.Store) *Generator {
	return &Generator{
		schedules:   schedules,
		performance: perf,
		tasks:       tasks,
		store:       st,
	}
}

// Generate resolves the student and timetable from the store and builds the
// day's curriculum. The per-student timetable wins; absent one, the shared
// section timetable is used.
func (g *Generator) Generate(ctx context.Context, studentID, date string) (*models.DailyCurriculum, error) {
	student, err := g.store.GetStudent(ctx, studentID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	timetable, err := g.store.GetTimetable(ctx, studentID, date)
	if errors.Is(err, store.ErrNotFound) {
		timetable = nil
	} else if err != nil {
		return nil, err
	}

	return g.GenerateDaily(ctx, student, timetable, date)
}

// GenerateDaily builds the curriculum from an explicit timetable. A nil
// timetable falls back to the (semester, section) shared timetable; if that
// is missing too, the request fails with ErrScheduleNotFound.
func (g *Generator) GenerateDaily(ctx context.Context, student *models.StudentProfile, timetable *models.Timetable, date string) (*models.DailyCurriculum, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if timetable == nil {
		sectionTimetable, err := g.store.GetSectionTimetable(ctx, student.Semester, student.Section)
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		if err != nil {
			return nil, err
		}
		timetable = sectionTimetable
	}

	breaks := g.schedules.AnalyzeDailySchedule(timetable.Schedule)
	analysis := g.performance.AnalyzePerformance(student)

	daily := models.NewDailyCurriculum(student.ID, date)
	for _, bp := range breaks {
		bp.AssignedTasks = g.generateBreakTasks(ctx, bp, student, analysis)
		daily.AddBreakPeriod(bp)
	}

	return daily, nil
}

func (g *Generator) generateBreakTasks(ctx context.Context, bp models.BreakPeriod, student *models.StudentProfile, analysis *models.PerformanceAnalysis) []models.MicroTask {
	pctx := buildContext(bp, student, analysis)

	candidates, err := g.tasks.Generate(ctx, pctx)
	if err != nil {
		// Generator failures are absorbed; the fallback task below keeps the
		// curriculum usable.
		log.Printf("task generation failed for break %s-%s: %v", bp.StartTime, bp.EndTime, err)
		candidates = nil
	}

	return g.validateAndEnrich(candidates, pctx, bp)
}

// buildContext aggregates the personalization signal for one break.
func buildContext(bp models.BreakPeriod, student *models.StudentProfile, analysis *models.PerformanceAnalysis) generator.PersonalizationContext {
	pctx := generator.PersonalizationContext{
		DurationMinutes:  bp.DurationMinutes,
		BreakType:        bp.BreakType,
		StudentID:        student.ID,
		LearningStyle:    student.LearningStyle,
		Interests:        student.Interests,
		CareerGoals:      student.CareerGoals,
		WeakSubjects:     analysis.WeakSubjectNames(),
		StrongSubjects:   analysis.StrongSubjectNames(),
		ImprovementAreas: analysis.ImprovementAreas,
	}

	for _, area := range analysis.ImprovementAreas {
		pctx.RecentPoorTopics = append(pctx.RecentPoorTopics, area.RecentPoorTopics...)
	}

	if bp.PreviousClass != nil {
		pctx.PreviousSubject = bp.PreviousClass.Subject
		pctx.PreviousTopic = bp.PreviousClass.Topic
	}
	if bp.NextClass != nil {
		pctx.NextSubject = bp.NextClass.Subject
		pctx.NextTopic = bp.NextClass.Topic
	}

	return pctx
}

// validateAndEnrich accepts candidates in order while they fit the break's
// time budget, stopping after maxTasksPerBreak. When nothing fits and enough
// budget remains, it synthesizes one deterministic review task.
func (g *Generator) validateAndEnrich(candidates []generator.CandidateTask, pctx generator.PersonalizationContext, bp models.BreakPeriod) []models.MicroTask {
	maxDuration := bp.DurationMinutes - bufferMinutes

	tasks := []models.MicroTask{}
	total := 0
	for _, candidate := range candidates {
		if candidate.DurationMinutes <= 0 {
			candidate.DurationMinutes = defaultTaskMinutes
		}
		if total+candidate.DurationMinutes <= maxDuration {
			tasks = append(tasks, g.enrichTask(candidate, pctx, bp))
			total += candidate.DurationMinutes
		}
		if len(tasks) >= maxTasksPerBreak {
			break
		}
	}

	if len(tasks) == 0 && maxDuration > minFallbackMinutes {
		tasks = append(tasks, g.fallbackTask(maxDuration, pctx))
	}

	return tasks
}

// enrichTask turns an accepted candidate into a finalized micro-task with
// defaults applied and personalization metadata attached. Gamification points
// and challenge level reflect the candidate's original difficulty; the task
// itself carries the performance-adjusted one.
func (g *Generator) enrichTask(candidate generator.CandidateTask, pctx generator.PersonalizationContext, bp models.BreakPeriod) models.MicroTask {
	originalDifficulty := defaultString(candidate.Difficulty, models.DifficultyMedium)
	subject := defaultString(candidate.Subject, "general")

	task := models.MicroTask{
		ID:                    uuid.NewString(),
		Title:                 defaultString(candidate.Title, "Learning Task"),
		Description:           candidate.Description,
		DurationMinutes:       candidate.DurationMinutes,
		Difficulty:            adjustDifficulty(originalDifficulty, subject, pctx),
		Subject:               subject,
		SkillsTargeted:        emptyIfNil(candidate.SkillsTargeted),
		LearningObjectives:    []string{defaultString(candidate.LearningObjective, "Learn something new")},
		Instructions:          emptyIfNil(candidate.Instructions),
		Resources:             emptyIfNil(candidate.Resources),
		EngagementHook:        candidate.EngagementHook,
		Connection:            candidate.Connection,
		PersonalizationReason: personalizationReason(candidate, subject, pctx),
		Gamification: models.Gamification{
			Points:         calculatePoints(candidate.DurationMinutes, originalDifficulty),
			Badges:         potentialBadges(candidate, subject, pctx),
			StreakBonus:    bp.DurationMinutes > 20,
			ChallengeLevel: originalDifficulty,
		},
		SuccessCriteria: successCriteria(candidate),
		CreatedAt:       time.Now(),
	}

	return task
}

// personalizationReason explains why the task was chosen, checking weak
// subject alignment, interest keywords and class bridging in that order and
// joining every match into one sentence.
func personalizationReason(candidate generator.CandidateTask, subject string, pctx generator.PersonalizationContext) string {
	lowerSubject := strings.ToLower(subject)
	var reasons []string

	if containsFold(pctx.WeakSubjects, lowerSubject) {
		reasons = append(reasons, fmt.Sprintf("targets your %s weakness", lowerSubject))
	}

	content := strings.ToLower(candidate.Title + " " + candidate.Description)
	for _, interest := range pctx.Interests {
		if strings.Contains(content, strings.ToLower(interest)) {
			reasons = append(reasons, fmt.Sprintf("connects to your interest in %s", strings.ToLower(interest)))
			break
		}
	}

	if pctx.PreviousSubject != "" && pctx.NextSubject != "" {
		if strings.Contains(strings.ToLower(pctx.PreviousSubject), lowerSubject) ||
			strings.Contains(strings.ToLower(pctx.NextSubject), lowerSubject) {
			reasons = append(reasons, fmt.Sprintf("bridges %s and %s", pctx.PreviousSubject, pctx.NextSubject))
		}
	}

	if len(reasons) == 0 {
		return "This task matches your current learning needs."
	}
	return "This task " + strings.Join(reasons, " and ") + "."
}

// adjustDifficulty steps the difficulty down for weak subjects and up for
// strong ones, clamped at easy and hard.
func adjustDifficulty(difficulty, subject string, pctx generator.PersonalizationContext) string {
	lowerSubject := strings.ToLower(subject)

	if containsFold(pctx.WeakSubjects, lowerSubject) {
		switch difficulty {
		case models.DifficultyHard:
			return models.DifficultyMedium
		case models.DifficultyMedium:
			return models.DifficultyEasy
		}
	} else if containsFold(pctx.StrongSubjects, lowerSubject) {
		switch difficulty {
		case models.DifficultyEasy:
			return models.DifficultyMedium
		case models.DifficultyMedium:
			return models.DifficultyHard
		}
	}

	return difficulty
}

func calculatePoints(durationMinutes int, difficulty string) int {
	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		multiplier = difficultyMultipliers[models.DifficultyMedium]
	}
	return int(float64(durationMinutes) * multiplier)
}

func potentialBadges(candidate generator.CandidateTask, subject string, pctx generator.PersonalizationContext) []string {
	badges := []string{}

	if containsFold(pctx.WeakSubjects, strings.ToLower(subject)) {
		badges = append(badges, titleCase(subject)+" Improver")
	}

	switch {
	case candidate.DurationMinutes >= 20:
		badges = append(badges, "Deep Learner")
	case candidate.DurationMinutes <= 10:
		badges = append(badges, "Quick Thinker")
	}

	content := strings.ToLower(candidate.Title + " " + candidate.Description)
	for _, interest := range pctx.Interests {
		if strings.Contains(content, strings.ToLower(interest)) {
			badges = append(badges, titleCase(interest)+" Explorer")
			break
		}
	}

	return badges
}

func successCriteria(candidate generator.CandidateTask) []string {
	criteria := []string{
		fmt.Sprintf("Complete within %d minutes", candidate.DurationMinutes),
	}
	if len(candidate.Instructions) > 0 {
		criteria = append(criteria, fmt.Sprintf("Follow all %d steps", len(candidate.Instructions)))
	}
	if candidate.LearningObjective != "" {
		criteria = append(criteria, "Achieve: "+candidate.LearningObjective)
	}
	criteria = append(criteria, "Stay focused throughout the activity")
	return criteria
}

// fallbackTask synthesizes one deterministic review task sized to the
// remaining budget when no candidates survived validation.
func (g *Generator) fallbackTask(durationMinutes int, pctx generator.PersonalizationContext) models.MicroTask {
	subject := "general"
	if len(pctx.WeakSubjects) > 0 {
		subject = pctx.WeakSubjects[0]
	}

	return models.MicroTask{
		ID:              uuid.NewString(),
		Title:           fmt.Sprintf("Quick %s Review", titleCase(subject)),
		Description:     fmt.Sprintf("Spend %d minutes reviewing your %s notes or textbook", durationMinutes, subject),
		DurationMinutes: durationMinutes,
		Difficulty:      models.DifficultyEasy,
		Subject:         subject,
		SkillsTargeted:  []string{},
		LearningObjectives: []string{
			fmt.Sprintf("Reinforce recent %s learning", subject),
		},
		Instructions: []string{
			"Get your notes or textbook",
			"Review the most recent topic",
			"Write down 2-3 key points",
			"Think about questions you have",
		},
		Resources:             []string{},
		EngagementHook:        "Quick confidence boost before next class",
		Connection:            "Prepares you for upcoming classes",
		PersonalizationReason: fmt.Sprintf("Focuses on your %s studies", subject),
		Gamification: models.Gamification{
			Points:         durationMinutes,
			Badges:         []string{"Quick Reviewer"},
			StreakBonus:    false,
			ChallengeLevel: models.DifficultyEasy,
		},
		SuccessCriteria: []string{
			fmt.Sprintf("Complete within %d minutes", durationMinutes),
			"Review at least one topic",
			"Note key concepts",
		},
		CreatedAt: time.Now(),
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func containsFold(list []string, lowered string) bool {
	for _, item := range list {
		if strings.ToLower(item) == lowered {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
