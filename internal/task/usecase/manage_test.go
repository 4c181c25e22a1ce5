package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
	"lunchbox-ai/internal/task/repository"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Username: "alice"}

	uc, repo, _ := newTestUseCase(managerWithText(""))
	seedTask(t, repo, sc.UserID, 1)
	seedTask(t, repo, sc.UserID, 2)
	seedTask(t, repo, "someone-else", 1)

	out, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 2 || len(out.Tasks) != 2 {
		t.Errorf("total=%d len=%d, want 2/2", out.Total, len(out.Tasks))
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Errorf("limit=%d offset=%d, want defaults 20/0", out.Limit, out.Offset)
	}

	out, err = uc.List(ctx, sc, task.ListInput{Limit: 500, Offset: -3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Errorf("limit=%d offset=%d after clamping, want 20/0", out.Limit, out.Offset)
	}
}

func TestDetailAndDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Username: "alice"}

	uc, repo, _ := newTestUseCase(managerWithText(""))
	created := seedTask(t, repo, sc.UserID, 2)

	detail, err := uc.Detail(ctx, sc, created.ID)
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if detail.Task.ID != created.ID {
		t.Errorf("Detail returned task %s, want %s", detail.Task.ID, created.ID)
	}

	if err := uc.Delete(ctx, sc, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := uc.Detail(ctx, sc, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail after delete error = %v, want ErrTaskNotFound", err)
	}

	if err := uc.Delete(ctx, sc, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Username: "alice"}

	uc, repo, _ := newTestUseCase(managerWithText(""))
	created := seedTask(t, repo, sc.UserID, 1)

	if _, err := uc.CompleteTask(ctx, sc, created.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}

	out, err := uc.Stats(ctx, sc)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if out.TotalTasksCompleted != 1 || out.StreakCount != 1 {
		t.Errorf("completed=%d streak=%d, want 1/1", out.TotalTasksCompleted, out.StreakCount)
	}
	if out.XP != 10 {
		t.Errorf("XP = %d, want 10", out.XP)
	}
}

func TestExportCalendar(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Username: "alice"}

	uc, repo, _ := newTestUseCase(managerWithText(""))

	due := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	dated, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             "File The Taxes",
		Category:          model.CategorySavory,
		Priority:          5,
		EstimatedDuration: 90,
		DueDate:           &due,
		CompletionSteps: []model.CompletionStep{
			{StepNumber: 1, Description: "gather receipts", EstimatedTime: 45},
		},
	})
	if err != nil {
		t.Fatalf("seed dated task: %v", err)
	}
	// Undated tasks are skipped.
	seedTask(t, repo, sc.UserID, 1)

	cal, err := uc.ExportCalendar(ctx, sc)
	if err != nil {
		t.Fatalf("ExportCalendar() error = %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"X-WR-CALNAME:alice Tasks",
		"UID:" + dated.ID + "@lunchboxai.com",
		"SUMMARY:File The Taxes",
		"LOCATION:Savory",
		"PRIORITY:1",
		"END:VCALENDAR",
	} {
		if !strings.Contains(cal, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
	if got := strings.Count(cal, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("calendar has %d events, want 1 (undated tasks skipped)", got)
	}
}
