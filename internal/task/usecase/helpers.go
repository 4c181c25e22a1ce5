package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lunchbox-ai/internal/model"
)

var (
	fillerPrefix  = regexp.MustCompile(`(?i)^(help me|i need to|i want to|can you help me with|please help me with)`)
	trailingPunct = regexp.MustCompile(`[.!?]+$`)
)

// extractTitle derives a display title from the raw user input: filler
// prefixes and trailing punctuation are stripped and every word is
// capitalized.
func extractTitle(input string) string {
	title := fillerPrefix.ReplaceAllString(input, "")
	title = trailingPunct.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	words := strings.Split(title, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// determinePriority maps urgency keywords in the user input onto the 1-5
// scale. Tiers are checked highest first; 1 is the default.
func determinePriority(input string) int {
	text := strings.ToLower(input)

	switch {
	case containsAny(text, "urgent", "asap", "deadline"):
		return 5
	case containsAny(text, "important", "due"):
		return 4
	case containsAny(text, "soon", "this week"):
		return 3
	case containsAny(text, "when i have time", "eventually"):
		return 2
	default:
		return 1
	}
}

// totalDuration sums the step time estimates. No estimates defaults to one
// hour; the floor is 15 minutes.
func totalDuration(estimates []int) int {
	if len(estimates) == 0 {
		return 60
	}
	total := 0
	for _, e := range estimates {
		total += e
	}
	if total < 15 {
		return 15
	}
	return total
}

// xpForDuration is the XP awarded for completing work on a task: one point
// per ten estimated minutes, ten at minimum.
func xpForDuration(durationMinutes int) int {
	xp := durationMinutes / 10
	if xp < 10 {
		return 10
	}
	return xp
}

// progressFor returns the rounded completion percentage after reaching step.
func progressFor(step, total int) int {
	if total == 0 {
		return 100
	}
	return int(float64(step)/float64(total)*100 + 0.5)
}

// buildContextPrompt appends the user's gamification state and recent task
// titles to the system prompt so plans match their level and history.
func buildContextPrompt(user model.User, recent []model.Task) string {
	var sb strings.Builder
	sb.WriteString("\n\nUser Context:")

	if user.Level > 0 {
		fmt.Fprintf(&sb, "\n- User Level: %d", user.Level)
	}
	if user.XP > 0 {
		fmt.Fprintf(&sb, "\n- XP: %d", user.XP)
	}
	if user.StreakCount > 0 {
		fmt.Fprintf(&sb, "\n- Streak: %d days", user.StreakCount)
	}
	if len(recent) > 0 {
		titles := make([]string, 0, 3)
		for i, t := range recent {
			if i == 3 {
				break
			}
			titles = append(titles, t.Title)
		}
		fmt.Fprintf(&sb, "\n- Recent tasks: %s", strings.Join(titles, ", "))
	}

	return sb.String()
}

// buildPlan assembles the structured plan from the raw user input and the
// LLM narrative.
func (uc *implUseCase) buildPlan(input, response string, now time.Time) taskPlan {
	steps := uc.extract.ExtractSteps(response)
	estimates := uc.extract.ExtractTimeEstimates(response)
	tips := uc.extract.ExtractTips(response)
	due := uc.dateMath.ParseDueDate(input, now)

	completionSteps := make([]model.CompletionStep, len(steps))
	for i, s := range steps {
		est := 15
		if i < len(estimates) {
			est = estimates[i]
		}
		completionSteps[i] = model.CompletionStep{
			StepNumber:    i + 1,
			Description:   s,
			EstimatedTime: est,
		}
	}

	plan := taskPlan{
		Title:             extractTitle(input),
		Description:       response,
		Category:          uc.extract.Categorize(input, response),
		Priority:          determinePriority(input),
		EstimatedDuration: totalDuration(estimates),
		Steps:             completionSteps,
		Guidance: model.AIGuidance{
			Steps:            steps,
			TimeEstimates:    estimates,
			Tips:             tips,
			DueIsAllDay:      due.AllDay,
			OriginalResponse: response,
		},
	}
	if due.Found {
		at := due.At
		plan.DueDate = &at
	}
	return plan
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
