package store

import (
	"context"
	"fmt"
	"sync"

	"curriculum-service/internal/models"
)

// MemoryStore keeps everything in process memory. Concurrent writers to the
// same key race at the application level (last write wins); the mutex only
// keeps the maps themselves safe.
type MemoryStore struct {
	mu                sync.RWMutex
	students          map[string]*models.StudentProfile
	timetables        map[string]*models.Timetable
	sectionTimetables map[string]*models.Timetable
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		students:          map[string]*models.StudentProfile{},
		timetables:        map[string]*models.Timetable{},
		sectionTimetables: map[string]*models.Timetable{},
	}
}

func timetableKey(studentID, date string) string {
	return fmt.Sprintf("%s_%s", studentID, date)
}

func sectionKey(semester, section string) string {
	return fmt.Sprintf("%s-%s", semester, section)
}

func (m *MemoryStore) GetStudent(_ context.Context, id string) (*models.StudentProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	student, ok := m.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return student, nil
}

func (m *MemoryStore) PutStudent(_ context.Context, student *models.StudentProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students[student.ID] = student
	return nil
}

func (m *MemoryStore) GetTimetable(_ context.Context, studentID, date string) (*models.Timetable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	timetable, ok := m.timetables[timetableKey(studentID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	return timetable, nil
}

func (m *MemoryStore) PutTimetable(_ context.Context, timetable *models.Timetable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timetables[timetableKey(timetable.StudentID, timetable.Date)] = timetable
	return nil
}

func (m *MemoryStore) GetSectionTimetable(_ context.Context, semester, section string) (*models.Timetable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	timetable, ok := m.sectionTimetables[sectionKey(semester, section)]
	if !ok {
		return nil, ErrNotFound
	}
	return timetable, nil
}

func (m *MemoryStore) PutSectionTimetable(_ context.Context, semester, section string, timetable *models.Timetable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sectionTimetables[sectionKey(semester, section)] = timetable
	return nil
}
