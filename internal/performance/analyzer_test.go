package performance

import (
	"math"
	"testing"

	"curriculum-service/internal/models"
)

func studentWithScores(scores map[string][]float64, order []string) *models.StudentProfile {
	student := models.NewStudentProfile("S001", "Test Student", "10", "A")
	for _, subject := range order {
		for _, score := range scores[subject] {
			student.UpdatePerformance(subject, score, "exam")
		}
	}
	return student
}

func TestCalculateTrend(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	testCases := []struct {
		name     string
		scores   []float64
		expected string
	}{
		{"no records", nil, models.TrendInsufficientData},
		{"single record", []float64{70}, models.TrendInsufficientData},
		{"improving", []float64{50, 50, 50, 50, 90}, models.TrendImproving},
		{"declining", []float64{90, 90, 60, 60}, models.TrendDeclining},
		{"stable", []float64{70, 72, 71, 69}, models.TrendStable},
		{"window trims to last five", []float64{10, 10, 10, 80, 80, 80, 80, 80}, models.TrendStable},
		{"exact plus five is stable", []float64{50, 55}, models.TrendStable},
		{"just over plus five improves", []float64{50, 56}, models.TrendImproving},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var history []models.ScoreRecord
			for _, s := range tc.scores {
				history = append(history, models.ScoreRecord{Score: s})
			}
			if got := analyzer.calculateTrend(history); got != tc.expected {
				t.Errorf("calculateTrend(%v) = %s, want %s", tc.scores, got, tc.expected)
			}
		})
	}
}

func TestSubjectClassification(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	student := studentWithScores(map[string][]float64{
		"Physics":   {45, 50},
		"Chemistry": {70, 70},
		"English":   {88, 92},
	}, []string{"Physics", "Chemistry", "English"})

	analysis := analyzer.AnalyzePerformance(student)

	if len(analysis.WeakSubjects) != 1 || analysis.WeakSubjects[0].Subject != "Physics" {
		t.Errorf("weak subjects = %+v, want [Physics]", analysis.WeakSubjects)
	}
	if len(analysis.StrongSubjects) != 1 || analysis.StrongSubjects[0].Subject != "English" {
		t.Errorf("strong subjects = %+v, want [English]", analysis.StrongSubjects)
	}

	trend := analysis.PerformanceTrends["Chemistry"]
	if trend.AverageScore != 70 {
		t.Errorf("Chemistry average = %.1f, want 70", trend.AverageScore)
	}
	if trend.LatestScore != 70 {
		t.Errorf("Chemistry latest = %.1f, want 70", trend.LatestScore)
	}
}

func TestCalculatePriorityBounds(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	testCases := []struct {
		name     string
		avg      float64
		trend    string
		expected int
	}{
		{"very low declining", 30, models.TrendDeclining, 8},
		{"very low stable", 30, models.TrendStable, 7},
		{"low stable", 55, models.TrendStable, 5},
		{"mid declining", 65, models.TrendDeclining, 4},
		{"healthy stable", 85, models.TrendStable, 0},
		{"healthy declining", 75, models.TrendDeclining, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzer.calculatePriority(tc.avg, tc.trend)
			if got != tc.expected {
				t.Errorf("calculatePriority(%.0f, %s) = %d, want %d", tc.avg, tc.trend, got, tc.expected)
			}
			if got < 0 || got > 10 {
				t.Errorf("priority %d outside [0,10]", got)
			}
		})
	}
}

func TestImprovementAreasSorted(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	student := studentWithScores(map[string][]float64{
		"Physics":     {55, 55},         // weak, stable
		"Mathematics": {30, 30},         // very weak, stable
		"Chemistry":   {90, 90, 60, 60}, // declining but not weak on average
		"English":     {85, 85},         // healthy
	}, []string{"Physics", "Mathematics", "Chemistry", "English"})

	areas := analyzer.identifyImprovementAreas(student)
	if len(areas) != 3 {
		t.Fatalf("expected 3 improvement areas, got %d: %+v", len(areas), areas)
	}

	if areas[0].Subject != "Mathematics" {
		t.Errorf("highest priority area = %s, want Mathematics", areas[0].Subject)
	}
	for i := 1; i < len(areas); i++ {
		if areas[i].Priority > areas[i-1].Priority {
			t.Errorf("areas not sorted non-increasing: %+v", areas)
		}
	}
	for _, area := range areas {
		if area.Priority < 0 || area.Priority > 10 {
			t.Errorf("priority %d for %s outside [0,10]", area.Priority, area.Subject)
		}
		if len(area.RecentPoorTopics) == 0 {
			t.Errorf("area %s missing recent poor topics", area.Subject)
		}
	}
}

func TestLearningGapDetection(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	student := studentWithScores(map[string][]float64{
		"Mathematics": {65},
		"Physics":     {90},
	}, []string{"Mathematics", "Physics"})

	gaps := analyzer.analyzeLearningGaps(student)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	gap := gaps[0]
	if gap.WeakerSubject != "Mathematics" || gap.StrongerSubject != "Physics" {
		t.Errorf("gap subjects = %s/%s, want Mathematics/Physics", gap.WeakerSubject, gap.StrongerSubject)
	}
	if math.Abs(gap.GapSize-25) > 0.01 {
		t.Errorf("gap size = %.1f, want 25", gap.GapSize)
	}
	if gap.ConnectingSkill != "mathematical problem solving" {
		t.Errorf("connecting skill = %s", gap.ConnectingSkill)
	}
}

func TestLearningGapRequiresTableEntry(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// Large delta but no known skill connection between the pair.
	student := studentWithScores(map[string][]float64{
		"Art":     {40},
		"Physics": {90},
	}, []string{"Art", "Physics"})

	if gaps := analyzer.analyzeLearningGaps(student); len(gaps) != 0 {
		t.Errorf("expected no gaps without a table entry, got %+v", gaps)
	}
}

func TestLearningGapReverseOrientation(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// Table stores (mathematics, physics); here physics is the weaker subject.
	student := studentWithScores(map[string][]float64{
		"Physics":     {50},
		"Mathematics": {85},
	}, []string{"Physics", "Mathematics"})

	gaps := analyzer.analyzeLearningGaps(student)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].WeakerSubject != "Physics" || gaps[0].StrongerSubject != "Mathematics" {
		t.Errorf("gap subjects = %s/%s, want Physics/Mathematics", gaps[0].WeakerSubject, gaps[0].StrongerSubject)
	}
}

func TestRecommendationsComposition(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	student := studentWithScores(map[string][]float64{
		"Physics":   {45, 50},
		"Chemistry": {90, 90, 60, 60},
		"English":   {90},
	}, []string{"Physics", "Chemistry", "English"})
	student.Interests = []string{"space science", "robotics"}

	analysis := analyzer.AnalyzePerformance(student)

	if len(analysis.Recommendations) > 5 {
		t.Fatalf("recommendations exceed 5: %d", len(analysis.Recommendations))
	}

	want := []string{
		"Focus on Physics fundamentals with daily 10-minute practice sessions",
		"Address declining Chemistry performance with targeted review sessions",
		"Connect your interest in space science to Physics for better engagement",
	}
	if len(analysis.Recommendations) != len(want) {
		t.Fatalf("recommendations = %v", analysis.Recommendations)
	}
	for i, line := range want {
		if analysis.Recommendations[i] != line {
			t.Errorf("recommendation[%d] = %q, want %q", i, analysis.Recommendations[i], line)
		}
	}
}

func TestRecommendationsSkipInterestWithoutWeakSubject(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	student := studentWithScores(map[string][]float64{
		"English": {90, 92},
	}, []string{"English"})
	student.Interests = []string{"music"}

	analysis := analyzer.AnalyzePerformance(student)
	for _, line := range analysis.Recommendations {
		if line == "Connect your interest in music to English for better engagement" {
			t.Errorf("interest line emitted without weak subjects")
		}
	}
	if len(analysis.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", analysis.Recommendations)
	}
}
