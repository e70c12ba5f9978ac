package generator

import (
	"context"
	"strings"
	"testing"
)

func TestParseTasksJSONBlock(t *testing.T) {
	response := `Here are the tasks you asked for:

{"tasks": [
  {"title": "Physics Flash Review", "description": "Review thermodynamics formulas", "duration_minutes": 8, "subject": "physics", "difficulty": "easy", "instructions": ["Open notes", "Recite formulas"], "learning_objective": "Recall key formulas"},
  {"title": "Math Sprint", "description": "Solve 3 quick integrals", "duration_minutes": 5, "subject": "mathematics", "difficulty": "medium"}
]}

Good luck!`

	tasks := parseTasks(response)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].Title != "Physics Flash Review" || tasks[0].DurationMinutes != 8 {
		t.Errorf("first task = %+v", tasks[0])
	}
	if len(tasks[0].Instructions) != 2 {
		t.Errorf("instructions = %v, want 2 steps", tasks[0].Instructions)
	}
	if tasks[1].Subject != "mathematics" || tasks[1].Difficulty != "medium" {
		t.Errorf("second task = %+v", tasks[1])
	}
	// Optional fields absent in the payload stay zero.
	if tasks[1].LearningObjective != "" || len(tasks[1].Instructions) != 0 {
		t.Errorf("unexpected defaults on second task: %+v", tasks[1])
	}
}

func TestParseTasksTextFallback(t *testing.T) {
	response := strings.Join([]string{
		"Task 1",
		"Title: Chemistry Recap",
		"Description: Go over bonding basics",
		"Subject: Chemistry",
		"Difficulty: Easy",
		"Duration: 7 minutes",
		"Title: Vocabulary Drill",
		"Description: Ten new words",
		"Duration: 5 minutes",
	}, "\n")

	tasks := parseTasks(response)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %+v", len(tasks), tasks)
	}

	first := tasks[0]
	if first.Title != "Chemistry Recap" || first.Subject != "chemistry" || first.Difficulty != "easy" || first.DurationMinutes != 7 {
		t.Errorf("first task = %+v", first)
	}

	second := tasks[1]
	if second.Title != "Vocabulary Drill" || second.DurationMinutes != 5 {
		t.Errorf("second task = %+v", second)
	}
	if second.Subject != "general" {
		t.Errorf("subject default = %s, want general", second.Subject)
	}
}

func TestParseTasksUnusableOutput(t *testing.T) {
	if tasks := parseTasks("I cannot help with that."); len(tasks) != 0 {
		t.Errorf("expected no tasks from unusable output, got %+v", tasks)
	}
}

func TestStaticGeneratorWeakSubjectAndBridge(t *testing.T) {
	g := NewStaticGenerator()

	tasks, err := g.Generate(context.Background(), PersonalizationContext{
		DurationMinutes: 20,
		WeakSubjects:    []string{"physics"},
		PreviousSubject: "Mathematics",
		NextSubject:     "Physics",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].Title != "Physics Quick Review" || tasks[0].Subject != "physics" {
		t.Errorf("first task = %+v", tasks[0])
	}
	if tasks[0].DurationMinutes != 10 {
		t.Errorf("review duration = %d, want 10", tasks[0].DurationMinutes)
	}
	if tasks[1].Title != "Mathematics to Physics Bridge" || tasks[1].Subject != "interdisciplinary" {
		t.Errorf("second task = %+v", tasks[1])
	}
	if tasks[1].DurationMinutes != 10 {
		t.Errorf("bridge duration = %d, want 10", tasks[1].DurationMinutes)
	}
}

func TestStaticGeneratorInterestFallback(t *testing.T) {
	g := NewStaticGenerator()

	tasks, err := g.Generate(context.Background(), PersonalizationContext{
		DurationMinutes: 15,
		Interests:       []string{"space science"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Space Science Learning Connection" {
		t.Errorf("task title = %s", tasks[0].Title)
	}
	if tasks[0].DurationMinutes != 15 {
		t.Errorf("duration = %d, want 15", tasks[0].DurationMinutes)
	}
}

func TestStaticGeneratorGenericTask(t *testing.T) {
	g := NewStaticGenerator()

	tasks, err := g.Generate(context.Background(), PersonalizationContext{DurationMinutes: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Mindful Learning Review" {
		t.Errorf("tasks = %+v, want single generic review", tasks)
	}
}
