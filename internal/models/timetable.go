package models

import "fmt"

// ClassEntry is one scheduled class on a day's timetable. Entries are immutable
// once added; the start-end time range keys the entry within a day.
type ClassEntry struct {
	Subject   string `bson:"subject" json:"subject"`
	Teacher   string `bson:"teacher" json:"teacher"`
	Room      string `bson:"room" json:"room"`
	Topic     string `bson:"topic" json:"topic"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

type Timetable struct {
	StudentID string                `bson:"student_id" json:"student_id"`
	Date      string                `bson:"date" json:"date"`
	Schedule  map[string]ClassEntry `bson:"schedule" json:"schedule"`
}

func NewTimetable(studentID, date string) *Timetable {
	return &Timetable{
		StudentID: studentID,
		Date:      date,
		Schedule:  map[string]ClassEntry{},
	}
}

func (t *Timetable) AddClass(startTime, endTime, subject, teacher, room, topic string) {
	if t.Schedule == nil {
		t.Schedule = map[string]ClassEntry{}
	}
	slot := fmt.Sprintf("%s-%s", startTime, endTime)
	t.Schedule[slot] = ClassEntry{
		Subject:   subject,
		Teacher:   teacher,
		Room:      room,
		Topic:     topic,
		StartTime: startTime,
		EndTime:   endTime,
	}
}
