package generator

import (
	"context"
	"fmt"
	"strings"
)

// StaticGenerator proposes tasks from deterministic rules: a review task for
// the first weak subject, then either a class-bridging task or an
// interest-exploration task. Used when no LLM endpoint is configured.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (g *StaticGenerator) Generate(_ context.Context, pctx PersonalizationContext) ([]CandidateTask, error) {
	duration := pctx.DurationMinutes
	if duration <= 0 {
		duration = 15
	}

	var tasks []CandidateTask

	if len(pctx.WeakSubjects) > 0 {
		subject := pctx.WeakSubjects[0]
		reviewDuration := duration / 2
		if reviewDuration > 10 {
			reviewDuration = 10
		}
		tasks = append(tasks, CandidateTask{
			Title:           fmt.Sprintf("%s Quick Review", titleCase(subject)),
			Description:     fmt.Sprintf("Review fundamental concepts in %s to strengthen understanding", subject),
			DurationMinutes: reviewDuration,
			Subject:         strings.ToLower(subject),
			Difficulty:      "easy",
			Instructions: []string{
				fmt.Sprintf("Open your %s notes or textbook", subject),
				"Review the most challenging recent topic",
				"Write down 3 key points you learned",
				"Think of one question to ask your teacher",
			},
			LearningObjective: fmt.Sprintf("Strengthen %s fundamentals", subject),
			EngagementHook:    fmt.Sprintf("Build confidence in %s", subject),
			Connection:        fmt.Sprintf("This addresses your %s weakness and prepares you for future classes", subject),
		})
	}

	remaining := duration
	if len(tasks) > 0 {
		remaining = duration - tasks[0].DurationMinutes
	}

	switch {
	case pctx.PreviousSubject != "" && pctx.NextSubject != "" && pctx.PreviousSubject != pctx.NextSubject:
		tasks = append(tasks, CandidateTask{
			Title:           fmt.Sprintf("%s to %s Bridge", pctx.PreviousSubject, pctx.NextSubject),
			Description:     fmt.Sprintf("Connect concepts from %s class to prepare for %s", pctx.PreviousSubject, pctx.NextSubject),
			DurationMinutes: remaining,
			Subject:         "interdisciplinary",
			Difficulty:      "medium",
			Instructions: []string{
				fmt.Sprintf("Think about what you learned in %s", pctx.PreviousSubject),
				fmt.Sprintf("Consider how it might connect to %s", pctx.NextSubject),
				"Write down any connections you notice",
				"Prepare questions for your next teacher",
			},
			LearningObjective: "Connect learning across subjects",
			EngagementHook:    "See the big picture of learning",
			Connection:        fmt.Sprintf("Bridges your %s and %s classes", pctx.PreviousSubject, pctx.NextSubject),
		})
	case len(pctx.Interests) > 0:
		interest := pctx.Interests[0]
		tasks = append(tasks, CandidateTask{
			Title:           fmt.Sprintf("%s Learning Connection", titleCase(interest)),
			Description:     fmt.Sprintf("Explore how your interest in %s connects to your studies", interest),
			DurationMinutes: remaining,
			Subject:         "interdisciplinary",
			Difficulty:      "medium",
			Instructions: []string{
				fmt.Sprintf("Think about your interest in %s", interest),
				"Find connections to your recent classes",
				"Look up one interesting fact online",
				"Write down how this motivates your studies",
			},
			LearningObjective: fmt.Sprintf("Connect %s interest with academics", interest),
			EngagementHook:    "Make learning personal and exciting",
			Connection:        fmt.Sprintf("Uses your %s interest to boost motivation", interest),
		})
	}

	if len(tasks) == 0 {
		tasks = append(tasks, CandidateTask{
			Title:           "Mindful Learning Review",
			Description:     "Take time to review and organize your recent learning",
			DurationMinutes: duration,
			Subject:         "general",
			Difficulty:      "easy",
			Instructions: []string{
				"Look through your recent notes",
				"Organize your thoughts",
				"Identify what you learned today",
				"Set an intention for your next class",
			},
			LearningObjective: "Consolidate recent learning",
			EngagementHook:    "Prepare your mind for learning",
			Connection:        "Helps you be more focused in upcoming classes",
		})
	}

	return tasks, nil
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
