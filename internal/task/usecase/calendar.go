package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task/repository"
	"lunchbox-ai/pkg/discord"
	"lunchbox-ai/pkg/gcalendar"
	"lunchbox-ai/pkg/ics"
)

// ExportCalendar renders every dated task of the user as an iCalendar
// document.
func (uc *implUseCase) ExportCalendar(ctx context.Context, sc model.Scope) (string, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID, Limit: 100})
	if err != nil {
		return "", fmt.Errorf("failed to list tasks: %w", err)
	}

	var events []ics.Event
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		events = append(events, ics.Event{
			UID:         t.ID + "@lunchboxai.com",
			Summary:     t.Title,
			Description: eventDescription(t),
			Location:    string(t.Category),
			Start:       *t.DueDate,
			Duration:    time.Duration(t.EstimatedDuration) * time.Minute,
			AllDay:      t.AIGuidance.DueIsAllDay,
			Priority:    t.Priority,
			Created:     t.CreatedAt,
			Updated:     t.UpdatedAt,
		})
	}

	calName := "Lunchbox AI Tasks"
	if sc.Username != "" {
		calName = sc.Username + " Tasks"
	}

	return uc.ics.Generate(calName, events), nil
}

// eventDescription keeps the calendar body concise: a step list plus tips,
// never the raw narrative.
func eventDescription(t model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Task plan with %d step(s).", t.TotalSteps())

	if len(t.CompletionSteps) > 0 {
		sb.WriteString("\n\nSteps:\n")
		for _, step := range t.CompletionSteps {
			fmt.Fprintf(&sb, "%d. %s\n", step.StepNumber, step.Description)
		}
	}

	if len(t.AIGuidance.Tips) > 0 {
		sb.WriteString("\nTips:\n")
		for _, tip := range t.AIGuidance.Tips {
			fmt.Fprintf(&sb, "- %s\n", tip)
		}
	}

	return strings.TrimSpace(sb.String())
}

// tryCreateCalendarEvent mirrors a dated task into Google Calendar.
// Failures are logged and swallowed: the task is already persisted.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	start := *t.DueDate
	duration := t.EstimatedDuration
	if duration <= 0 {
		duration = 60
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: eventDescription(t),
		StartTime:   start,
		Timezone:    uc.dateMath.Location().String(),
	}
	if t.AIGuidance.DueIsAllDay {
		req.AllDay = true
		req.EndTime = start.AddDate(0, 0, 1)
	} else {
		req.EndTime = start.Add(time.Duration(duration) * time.Minute)
	}

	if _, err := uc.calendar.CreateEvent(ctx, req); err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", t.Title, err)
	}
}

// notifyTaskCompleted posts a completion embed to Discord. Best-effort.
func (uc *implUseCase) notifyTaskCompleted(ctx context.Context, sc model.Scope, t model.Task, xpGained int) {
	if uc.notifier == nil {
		return
	}

	msg := discord.WebhookMessage{
		Embeds: []discord.Embed{{
			Title:       "🎉 Task Completed!",
			Description: fmt.Sprintf("Great job completing %q!", t.Title),
			Color:       discord.ColorGreen,
			Fields: []discord.EmbedField{
				{Name: "⭐ XP Gained", Value: fmt.Sprintf("+%d XP", xpGained), Inline: true},
				{Name: "📊 Category", Value: string(t.Category), Inline: true},
				{Name: "⏱️ Duration", Value: fmt.Sprintf("%d minutes", t.EstimatedDuration), Inline: true},
			},
			Footer:    &discord.EmbedFooter{Text: "Lunchbox AI • Keep up the great work!"},
			Timestamp: discord.NewTimestamp(time.Now()),
		}},
	}

	if err := uc.notifier.Send(ctx, msg); err != nil {
		uc.l.Warnf(ctx, "discord notification failed for task %s (non-fatal): %v", t.ID, err)
	}
}
