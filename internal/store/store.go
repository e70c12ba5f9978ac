// Package store holds student profiles and timetables behind a narrow
// interface so a persistence backend can be swapped without touching the
// analyzers. No transactional guarantees; last write wins.
package store

import (
	"context"
	"errors"

	"curriculum-service/internal/models"
)

// ErrNotFound is returned for missing students and timetables.
var ErrNotFound = errors.New("not found")

type Store interface {
	GetStudent(ctx context.Context, id string) (*models.StudentProfile, error)
	PutStudent(ctx context.Context, student *models.StudentProfile) error

	GetTimetable(ctx context.Context, studentID, date string) (*models.Timetable, error)
	PutTimetable(ctx context.Context, timetable *models.Timetable) error

	GetSectionTimetable(ctx context.Context, semester, section string) (*models.Timetable, error)
	PutSectionTimetable(ctx context.Context, semester, section string, timetable *models.Timetable) error
}
