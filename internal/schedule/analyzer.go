// Package schedule derives break periods and subject transitions from a
// day's timetable.
package schedule

import (
	"sort"
	"strings"
	"time"

	"curriculum-service/internal/models"
	"curriculum-service/internal/timeutil"
)

// Config controls break detection.
type Config struct {
	// MinBreakMinutes is the smallest inter-class gap reported as a break.
	MinBreakMinutes int
}

func DefaultConfig() *Config {
	return &Config{MinBreakMinutes: 5}
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

type timeSlot struct {
	start time.Time
	end   time.Time
	entry models.ClassEntry
}

// AnalyzeDailySchedule finds the gaps between consecutive classes and returns
// them as break periods in ascending start-time order. Only inter-class gaps
// are reported; nothing is emitted before the first class or after the last.
// An empty or malformed schedule yields an empty result, never an error.
func (a *Analyzer) AnalyzeDailySchedule(schedule map[string]models.ClassEntry) []models.BreakPeriod {
	if len(schedule) == 0 {
		return []models.BreakPeriod{}
	}

	slots := make([]timeSlot, 0, len(schedule))
	for _, entry := range schedule {
		slots = append(slots, timeSlot{
			start: timeutil.ParseTime(entry.StartTime),
			end:   timeutil.ParseTime(entry.EndTime),
			entry: entry,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].start.Before(slots[j].start)
	})

	breaks := []models.BreakPeriod{}
	for i := 0; i < len(slots)-1; i++ {
		current := slots[i]
		next := slots[i+1]

		gap := timeutil.DurationMinutes(current.end, next.start)
		if gap < a.config.MinBreakMinutes {
			continue
		}

		prev := current.entry
		following := next.entry
		breaks = append(breaks, models.BreakPeriod{
			StartTime:       timeutil.FormatTime(current.end),
			EndTime:         timeutil.FormatTime(next.start),
			DurationMinutes: gap,
			BreakType:       ClassifyBreakType(gap),
			PreviousClass:   &prev,
			NextClass:       &following,
			AssignedTasks:   []models.MicroTask{},
		})
	}

	return breaks
}

// ClassifyBreakType maps a break duration onto a break type. The tiers leave
// 46-59 minutes unclaimed by medium and lunch, so those gaps fall through to
// long together with anything above 120 minutes.
func ClassifyBreakType(durationMinutes int) string {
	switch {
	case durationMinutes <= 15:
		return models.BreakShort
	case durationMinutes <= 45:
		return models.BreakMedium
	case durationMinutes >= 60 && durationMinutes <= 120:
		return models.BreakLunch
	default:
		return models.BreakLong
	}
}

// SubjectTransition describes a change of subject across one break.
type SubjectTransition struct {
	BreakTime      string `json:"break_time"`
	FromSubject    string `json:"from_subject"`
	ToSubject      string `json:"to_subject"`
	Duration       int    `json:"duration"`
	TransitionType string `json:"transition_type"`
}

// relatedSubjects lists explicit subject-affinity pairs checked before the
// STEM grouping.
var relatedSubjects = map[string][]string{
	"mathematics": {"physics", "chemistry", "computer science"},
	"physics":     {"mathematics", "chemistry"},
	"chemistry":   {"physics", "biology", "mathematics"},
	"biology":     {"chemistry"},
	"english":     {"literature", "history"},
	"history":     {"geography", "social studies"},
}

var stemSubjects = []string{"mathematics", "physics", "chemistry", "biology", "computer"}

// SubjectTransitions reports the breaks whose surrounding classes have
// different subjects, tagged with a transition type.
func (a *Analyzer) SubjectTransitions(breaks []models.BreakPeriod) []SubjectTransition {
	transitions := []SubjectTransition{}

	for _, bp := range breaks {
		if bp.PreviousClass == nil || bp.NextClass == nil {
			continue
		}
		from := bp.PreviousClass.Subject
		to := bp.NextClass.Subject
		if from == to {
			continue
		}

		transitions = append(transitions, SubjectTransition{
			BreakTime:      bp.StartTime + "-" + bp.EndTime,
			FromSubject:    from,
			ToSubject:      to,
			Duration:       bp.DurationMinutes,
			TransitionType: transitionType(from, to),
		})
	}

	return transitions
}

func transitionType(fromSubject, toSubject string) string {
	from := strings.ToLower(fromSubject)
	to := strings.ToLower(toSubject)

	for subject, related := range relatedSubjects {
		if strings.Contains(from, subject) && containsAny(to, related) {
			return "related"
		}
		if strings.Contains(to, subject) && containsAny(from, related) {
			return "related"
		}
	}

	fromSTEM := containsAny(from, stemSubjects)
	toSTEM := containsAny(to, stemSubjects)

	switch {
	case fromSTEM && !toSTEM:
		return "stem_to_humanities"
	case !fromSTEM && toSTEM:
		return "humanities_to_stem"
	case fromSTEM && toSTEM:
		return "stem_to_stem"
	default:
		return "unrelated"
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
