// Package performance turns a student's score history into weak/strong
// classifications, trends, improvement priorities and cross-subject gaps.
package performance

import (
	"fmt"
	"sort"
	"strings"

	"curriculum-service/internal/models"
)

// Config holds the classification thresholds.
type Config struct {
	// WeakThreshold marks subjects with an average below it as weak.
	WeakThreshold float64
	// StrongThreshold marks subjects with an average at or above it as strong.
	StrongThreshold float64
	// GapThreshold is the minimum average-score delta for a learning gap.
	GapThreshold float64
	// TrendWindow is how many trailing score records feed trend detection.
	TrendWindow int
}

func DefaultConfig() *Config {
	return &Config{
		WeakThreshold:   60,
		StrongThreshold: 80,
		GapThreshold:    20,
		TrendWindow:     5,
	}
}

type Analyzer struct {
	config *Config
}

func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{config: config}
}

// challengingTopics lists commonly difficult topics per subject, used when no
// finer-grained topic tracking exists for the student.
var challengingTopics = map[string][]string{
	"mathematics": {"integration", "differentiation", "complex numbers", "trigonometry"},
	"physics":     {"thermodynamics", "electromagnetism", "quantum mechanics", "optics"},
	"chemistry":   {"organic chemistry", "chemical bonding", "electrochemistry"},
	"biology":     {"genetics", "cell biology", "ecology", "evolution"},
	"english":     {"grammar", "essay writing", "comprehension", "vocabulary"},
}

var focusSuggestions = map[string]map[string][]string{
	"mathematics": {
		"low":    {"basic arithmetic", "fundamental concepts", "problem-solving steps"},
		"medium": {"formula application", "word problems", "concept connections"},
		"high":   {"advanced problems", "proof techniques", "real-world applications"},
	},
	"physics": {
		"low":    {"basic formulas", "unit conversions", "conceptual understanding"},
		"medium": {"problem solving", "graph interpretation", "laboratory skills"},
		"high":   {"complex calculations", "theoretical applications", "research methods"},
	},
}

// skillConnections maps lowercased (weaker, stronger) subject pairs to the
// transferable skill linking them. Lookups try both orientations.
var skillConnections = map[[2]string]string{
	{"mathematics", "physics"}: "mathematical problem solving",
	{"physics", "chemistry"}:   "scientific reasoning",
	{"chemistry", "biology"}:   "molecular understanding",
	{"english", "history"}:     "analytical writing",
}

// AnalyzePerformance derives the full performance snapshot for a student.
func (a *Analyzer) AnalyzePerformance(student *models.StudentProfile) *models.PerformanceAnalysis {
	analysis := &models.PerformanceAnalysis{
		StudentID:         student.ID,
		WeakSubjects:      []models.SubjectStanding{},
		StrongSubjects:    []models.SubjectStanding{},
		PerformanceTrends: map[string]models.SubjectTrend{},
		ImprovementAreas:  []models.ImprovementArea{},
		LearningGaps:      []models.LearningGap{},
		Recommendations:   []string{},
	}

	for _, subject := range student.Subjects {
		avg := student.AverageScore(subject)
		trend := a.calculateTrend(student.Performance[subject])

		analysis.PerformanceTrends[subject] = models.SubjectTrend{
			AverageScore: avg,
			Trend:        trend,
			LatestScore:  latestScore(student.Performance[subject]),
		}

		standing := models.SubjectStanding{Subject: subject, Score: avg, Trend: trend}
		if avg < a.config.WeakThreshold {
			analysis.WeakSubjects = append(analysis.WeakSubjects, standing)
		} else if avg >= a.config.StrongThreshold {
			analysis.StrongSubjects = append(analysis.StrongSubjects, standing)
		}
	}

	analysis.ImprovementAreas = a.identifyImprovementAreas(student)
	analysis.LearningGaps = a.analyzeLearningGaps(student)
	analysis.Recommendations = a.generateRecommendations(analysis, student)

	return analysis
}

// calculateTrend compares the first and second halves of the trailing score
// window. For odd counts the middle record belongs to the second half.
func (a *Analyzer) calculateTrend(history []models.ScoreRecord) string {
	if len(history) < 2 {
		return models.TrendInsufficientData
	}

	window := history
	if len(window) > a.config.TrendWindow {
		window = window[len(window)-a.config.TrendWindow:]
	}

	half := len(window) / 2
	first := window[:half]
	second := window[half:]

	diff := meanScore(second) - meanScore(first)
	switch {
	case diff > 5:
		return models.TrendImproving
	case diff < -5:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func meanScore(records []models.ScoreRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range records {
		total += r.Score
	}
	return total / float64(len(records))
}

func latestScore(history []models.ScoreRecord) float64 {
	if len(history) == 0 {
		return 0.0
	}
	return history[len(history)-1].Score
}

// identifyImprovementAreas flags every subject that is weak or declining,
// priority-scored and sorted non-increasing. The sort is stable so ties keep
// the subject's original iteration order.
func (a *Analyzer) identifyImprovementAreas(student *models.StudentProfile) []models.ImprovementArea {
	areas := []models.ImprovementArea{}

	for _, subject := range student.Subjects {
		avg := student.AverageScore(subject)
		trend := a.calculateTrend(student.Performance[subject])

		if trend != models.TrendDeclining && avg >= a.config.WeakThreshold {
			continue
		}

		areas = append(areas, models.ImprovementArea{
			Subject:          subject,
			Priority:         a.calculatePriority(avg, trend),
			RecentPoorTopics: recentPoorTopics(subject),
			SuggestedFocus:   suggestedFocus(subject, avg),
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Priority > areas[j].Priority
	})

	return areas
}

// calculatePriority scores an improvement area into [0,10].
func (a *Analyzer) calculatePriority(avgScore float64, trend string) int {
	priority := 0

	switch {
	case avgScore < 40:
		priority += 5
	case avgScore < 60:
		priority += 3
	case avgScore < 70:
		priority += 1
	}

	if trend == models.TrendDeclining {
		priority += 3
	} else if trend == models.TrendStable && avgScore < a.config.WeakThreshold {
		priority += 2
	}

	if priority > 10 {
		return 10
	}
	return priority
}

func recentPoorTopics(subject string) []string {
	if topics, ok := challengingTopics[strings.ToLower(subject)]; ok {
		return topics
	}
	return []string{"fundamental concepts"}
}

func suggestedFocus(subject string, avgScore float64) []string {
	level := "high"
	if avgScore < 50 {
		level = "low"
	} else if avgScore < 70 {
		level = "medium"
	}

	if bySubject, ok := focusSuggestions[strings.ToLower(subject)]; ok {
		if focus, ok := bySubject[level]; ok {
			return focus
		}
	}
	return []string{"practice fundamentals"}
}

// analyzeLearningGaps checks every subject pair for a large score disparity
// with a known skill connection. Pairs above the threshold without a table
// entry are dropped silently.
func (a *Analyzer) analyzeLearningGaps(student *models.StudentProfile) []models.LearningGap {
	gaps := []models.LearningGap{}

	subjects := student.Subjects
	for i, subject1 := range subjects {
		for _, subject2 := range subjects[i+1:] {
			if gap, ok := a.findSubjectGap(student, subject1, subject2); ok {
				gaps = append(gaps, gap)
			}
		}
	}

	return gaps
}

func (a *Analyzer) findSubjectGap(student *models.StudentProfile, subject1, subject2 string) (models.LearningGap, bool) {
	score1 := student.AverageScore(subject1)
	score2 := student.AverageScore(subject2)

	diff := score1 - score2
	if diff < 0 {
		diff = -diff
	}
	if diff <= a.config.GapThreshold {
		return models.LearningGap{}, false
	}

	weaker, stronger := subject1, subject2
	if score1 >= score2 {
		weaker, stronger = subject2, subject1
	}

	skill, ok := skillConnections[[2]string{strings.ToLower(weaker), strings.ToLower(stronger)}]
	if !ok {
		skill, ok = skillConnections[[2]string{strings.ToLower(stronger), strings.ToLower(weaker)}]
	}
	if !ok {
		return models.LearningGap{}, false
	}

	return models.LearningGap{
		WeakerSubject:   weaker,
		StrongerSubject: stronger,
		GapSize:         diff,
		ConnectingSkill: skill,
		Recommendation:  fmt.Sprintf("Use %s strengths to improve %s", stronger, weaker),
	}, true
}

// generateRecommendations emits one line per weak subject, one per declining
// subject, then at most one interest linkage, truncated to 5 lines overall.
func (a *Analyzer) generateRecommendations(analysis *models.PerformanceAnalysis, student *models.StudentProfile) []string {
	recommendations := []string{}

	for _, ws := range analysis.WeakSubjects {
		recommendations = append(recommendations,
			fmt.Sprintf("Focus on %s fundamentals with daily 10-minute practice sessions", ws.Subject))
	}

	for _, subject := range student.Subjects {
		if analysis.PerformanceTrends[subject].Trend == models.TrendDeclining {
			recommendations = append(recommendations,
				fmt.Sprintf("Address declining %s performance with targeted review sessions", subject))
		}
	}

	if len(student.Interests) > 0 && len(analysis.WeakSubjects) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Connect your interest in %s to %s for better engagement",
				student.Interests[0], analysis.WeakSubjects[0].Subject))
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}
