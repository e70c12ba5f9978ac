package models

import "time"

// ScoreRecord is a single test result for a subject. Records are append-only;
// insertion order is chronological order.
type ScoreRecord struct {
	Subject  string    `bson:"subject" json:"subject"`
	Score    float64   `bson:"score" json:"score"`
	TestType string    `bson:"test_type" json:"test_type"`
	Date     time.Time `bson:"date" json:"date"`
}

type StudentProfile struct {
	ID            string                   `bson:"_id" json:"student_id"`
	Name          string                   `bson:"name" json:"name"`
	Grade         string                   `bson:"grade" json:"grade"`
	Section       string                   `bson:"section" json:"section"`
	Semester      string                   `bson:"semester" json:"semester"`
	Interests     []string                 `bson:"interests" json:"interests"`
	CareerGoals   []string                 `bson:"career_goals" json:"career_goals"`
	LearningStyle string                   `bson:"learning_style" json:"learning_style"`
	// Subjects preserves the order subjects first appeared in the performance
	// record, so derived analyses iterate deterministically.
	Subjects    []string                 `bson:"subjects" json:"subjects"`
	Performance map[string][]ScoreRecord `bson:"performance" json:"performance"`
	CreatedAt   time.Time                `bson:"created_at" json:"created_at"`
	LastUpdated time.Time                `bson:"last_updated" json:"last_updated"`
}

func NewStudentProfile(id, name, grade, section string) *StudentProfile {
	now := time.Now()
	return &StudentProfile{
		ID:            id,
		Name:          name,
		Grade:         grade,
		Section:       section,
		Interests:     []string{},
		CareerGoals:   []string{},
		LearningStyle: "visual",
		Subjects:      []string{},
		Performance:   map[string][]ScoreRecord{},
		CreatedAt:     now,
		LastUpdated:   now,
	}
}

// UpdatePerformance appends a score record for a subject.
func (s *StudentProfile) UpdatePerformance(subject string, score float64, testType string) {
	if s.Performance == nil {
		s.Performance = map[string][]ScoreRecord{}
	}
	if _, ok := s.Performance[subject]; !ok {
		s.Subjects = append(s.Subjects, subject)
	}
	s.Performance[subject] = append(s.Performance[subject], ScoreRecord{
		Subject:  subject,
		Score:    score,
		TestType: testType,
		Date:     time.Now(),
	})
	s.LastUpdated = time.Now()
}

// AverageScore returns the arithmetic mean score for a subject, 0.0 when the
// subject has no records.
func (s *StudentProfile) AverageScore(subject string) float64 {
	records := s.Performance[subject]
	if len(records) == 0 {
		return 0.0
	}
	total := 0.0
	for _, r := range records {
		total += r.Score
	}
	return total / float64(len(records))
}

func (s *StudentProfile) WeakSubjects(threshold float64) []string {
	var weak []string
	for _, subject := range s.Subjects {
		if s.AverageScore(subject) < threshold {
			weak = append(weak, subject)
		}
	}
	return weak
}

func (s *StudentProfile) StrongSubjects(threshold float64) []string {
	var strong []string
	for _, subject := range s.Subjects {
		if s.AverageScore(subject) >= threshold {
			strong = append(strong, subject)
		}
	}
	return strong
}
