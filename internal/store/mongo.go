package store

import (
	"context"
	"errors"

	"curriculum-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the persistent Store implementation. Writes upsert by key so
// the last-write-wins semantics match the in-memory store.
type MongoStore struct {
	Students          *mongo.Collection
	Timetables        *mongo.Collection
	SectionTimetables *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		Students:          db.Collection("students"),
		Timetables:        db.Collection("timetables"),
		SectionTimetables: db.Collection("section_timetables"),
	}
}

type timetableDoc struct {
	ID        string           `bson:"_id"`
	Timetable models.Timetable `bson:"timetable"`
}

func (s *MongoStore) GetStudent(ctx context.Context, id string) (*models.StudentProfile, error) {
	var student models.StudentProfile
	err := s.Students.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *MongoStore) PutStudent(ctx context.Context, student *models.StudentProfile) error {
	_, err := s.Students.ReplaceOne(ctx, bson.M{"_id": student.ID}, student, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) GetTimetable(ctx context.Context, studentID, date string) (*models.Timetable, error) {
	return s.findTimetable(ctx, s.Timetables, timetableKey(studentID, date))
}

func (s *MongoStore) PutTimetable(ctx context.Context, timetable *models.Timetable) error {
	return s.putTimetable(ctx, s.Timetables, timetableKey(timetable.StudentID, timetable.Date), timetable)
}

func (s *MongoStore) GetSectionTimetable(ctx context.Context, semester, section string) (*models.Timetable, error) {
	return s.findTimetable(ctx, s.SectionTimetables, sectionKey(semester, section))
}

func (s *MongoStore) PutSectionTimetable(ctx context.Context, semester, section string, timetable *models.Timetable) error {
	return s.putTimetable(ctx, s.SectionTimetables, sectionKey(semester, section), timetable)
}

func (s *MongoStore) findTimetable(ctx context.Context, col *mongo.Collection, key string) (*models.Timetable, error) {
	var doc timetableDoc
	err := col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc.Timetable, nil
}

func (s *MongoStore) putTimetable(ctx context.Context, col *mongo.Collection, key string, timetable *models.Timetable) error {
	doc := timetableDoc{ID: key, Timetable: *timetable}
	_, err := col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}
