package models

const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// SubjectStanding classifies a subject as weak or strong together with the
// signals that drove the classification.
type SubjectStanding struct {
	Subject string  `bson:"subject" json:"subject"`
	Score   float64 `bson:"score" json:"score"`
	Trend   string  `bson:"trend" json:"trend"`
}

type SubjectTrend struct {
	AverageScore float64 `bson:"average_score" json:"average_score"`
	Trend        string  `bson:"trend" json:"trend"`
	LatestScore  float64 `bson:"latest_score" json:"latest_score"`
}

type ImprovementArea struct {
	Subject          string   `bson:"subject" json:"subject"`
	Priority         int      `bson:"priority" json:"priority"`
	RecentPoorTopics []string `bson:"recent_poor_topics" json:"recent_poor_topics"`
	SuggestedFocus   []string `bson:"suggested_focus" json:"suggested_focus"`
}

// LearningGap is a large performance disparity between two subjects with a
// known transferable skill connection.
type LearningGap struct {
	WeakerSubject   string  `bson:"weaker_subject" json:"weaker_subject"`
	StrongerSubject string  `bson:"stronger_subject" json:"stronger_subject"`
	GapSize         float64 `bson:"gap_size" json:"gap_size"`
	ConnectingSkill string  `bson:"connecting_skill" json:"connecting_skill"`
	Recommendation  string  `bson:"recommendation" json:"recommendation"`
}

// PerformanceAnalysis is a read-only snapshot derived from a student's score
// history.
type PerformanceAnalysis struct {
	StudentID         string                  `bson:"student_id" json:"student_id"`
	WeakSubjects      []SubjectStanding       `bson:"weak_subjects" json:"weak_subjects"`
	StrongSubjects    []SubjectStanding       `bson:"strong_subjects" json:"strong_subjects"`
	PerformanceTrends map[string]SubjectTrend `bson:"performance_trends" json:"performance_trends"`
	ImprovementAreas  []ImprovementArea       `bson:"improvement_areas" json:"improvement_areas"`
	LearningGaps      []LearningGap           `bson:"learning_gaps" json:"learning_gaps"`
	Recommendations   []string                `bson:"recommendations" json:"recommendations"`
}

// WeakSubjectNames returns just the subject names, in classification order.
func (a *PerformanceAnalysis) WeakSubjectNames() []string {
	names := make([]string, 0, len(a.WeakSubjects))
	for _, ws := range a.WeakSubjects {
		names = append(names, ws.Subject)
	}
	return names
}

func (a *PerformanceAnalysis) StrongSubjectNames() []string {
	names := make([]string, 0, len(a.StrongSubjects))
	for _, ss := range a.StrongSubjects {
		names = append(names, ss.Subject)
	}
	return names
}
