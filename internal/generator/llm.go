package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"curriculum-service/configs"
)

// LLMGenerator asks an OpenAI-compatible chat-completion endpoint for
// micro-tasks. Model output is free text; parsing is best-effort, first
// looking for a JSON block and then falling back to line-oriented heuristics.
type LLMGenerator struct {
	Client   *http.Client
	BaseURL  string
	APIKey   string
	Model    string
	Provider string
}

func NewLLMGenerator(cfg *configs.Config) *LLMGenerator {
	return &LLMGenerator{
		Client: &http.Client{
			Timeout: 120 * time.Second, // LLM responses can be slow
		},
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
		Provider: cfg.LLMProvider,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

func (l *LLMGenerator) Generate(ctx context.Context, pctx PersonalizationContext) ([]CandidateTask, error) {
	prompt := buildTaskPrompt(pctx)

	response, err := l.sendChatRequest(ctx, chatCompletionRequest{
		Model: l.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: "You are an AI tutor creating personalized micro-learning tasks for a student."},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty completion from %s", l.Provider)
	}

	return parseTasks(response.Choices[0].Message.Content), nil
}

func (l *LLMGenerator) sendChatRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if l.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.APIKey)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		log.Printf("LLM request failed with status %d: %s", resp.StatusCode, string(data))
		return nil, fmt.Errorf("llm returned status %d", resp.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

func buildTaskPrompt(pctx PersonalizationContext) string {
	var b strings.Builder

	b.WriteString("STUDENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Break Duration: %d minutes\n", pctx.DurationMinutes)
	fmt.Fprintf(&b, "- Previous Class: %s\n", orNone(pctx.PreviousSubject))
	fmt.Fprintf(&b, "- Next Class: %s\n", orNone(pctx.NextSubject))
	fmt.Fprintf(&b, "- Weak Subjects: %s\n", strings.Join(pctx.WeakSubjects, ", "))
	fmt.Fprintf(&b, "- Strong Subjects: %s\n", strings.Join(pctx.StrongSubjects, ", "))
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(pctx.Interests, ", "))
	fmt.Fprintf(&b, "- Learning Style: %s\n", pctx.LearningStyle)
	fmt.Fprintf(&b, "- Recent Poor Topics: %s\n", strings.Join(pctx.RecentPoorTopics, ", "))

	b.WriteString("\nREQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Create exactly 2 micro-tasks that fit within %d minutes\n", pctx.DurationMinutes)
	b.WriteString("2. Tasks should be specific, actionable, and engaging\n")
	b.WriteString("3. If there's a subject transition, create bridging activities\n")
	b.WriteString("4. Address weak subjects while incorporating student interests\n")
	fmt.Fprintf(&b, "5. Match the student's %s learning style\n", pctx.LearningStyle)

	b.WriteString("\nOUTPUT FORMAT (JSON):\n")
	b.WriteString(`{"tasks": [{"title": "...", "description": "...", "duration_minutes": 0, "subject": "...", "difficulty": "easy/medium/hard", "instructions": ["..."], "learning_objective": "...", "engagement_hook": "...", "connection": "..."}]}`)
	b.WriteString("\n\nFocus on making tasks that are immediately actionable and connect to the student's academic journey.\n")

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseTasks extracts structured tasks from free-form model output.
func parseTasks(responseText string) []CandidateTask {
	if block := jsonBlockPattern.FindString(responseText); block != "" {
		var parsed struct {
			Tasks []CandidateTask `json:"tasks"`
		}
		if err := json.Unmarshal([]byte(block), &parsed); err == nil {
			return parsed.Tasks
		}
		log.Println("Could not parse JSON from LLM response, falling back to text parsing")
	}
	return parseTextTasks(responseText)
}

// parseTextTasks scrapes "title:" / "description:" / "duration:" style lines
// when the model ignored the JSON format. Best-effort by design.
func parseTextTasks(text string) []CandidateTask {
	var tasks []CandidateTask
	var current *CandidateTask

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "title:") || strings.HasPrefix(line, "1.") || strings.HasPrefix(line, "2."):
			if current != nil {
				tasks = append(tasks, *current)
			}
			current = &CandidateTask{
				Title:           valueAfterColon(line),
				DurationMinutes: 10,
				Subject:         "general",
				Difficulty:      "medium",
			}
		case current == nil:
			continue
		case strings.Contains(lower, "description:"):
			current.Description = valueAfterColon(line)
		case strings.Contains(lower, "subject:"):
			current.Subject = strings.ToLower(valueAfterColon(line))
		case strings.Contains(lower, "difficulty:"):
			current.Difficulty = strings.ToLower(valueAfterColon(line))
		case strings.Contains(lower, "duration:"):
			if minutes := extractDigits(line); minutes > 0 {
				current.DurationMinutes = minutes
			}
		}
	}
	if current != nil {
		tasks = append(tasks, *current)
	}

	return tasks
}

func valueAfterColon(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}

func extractDigits(line string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, line)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
