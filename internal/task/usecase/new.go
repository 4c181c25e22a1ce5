package usecase

import (
	"lunchbox-ai/internal/narrative"
	"lunchbox-ai/internal/task/repository"
	"lunchbox-ai/pkg/datemath"
	"lunchbox-ai/pkg/discord"
	"lunchbox-ai/pkg/gcalendar"
	"lunchbox-ai/pkg/ics"
	"lunchbox-ai/pkg/llmprovider"
	pkgLog "lunchbox-ai/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	extract  narrative.Service
	dateMath *datemath.Parser
	repo     repository.TaskRepository
	userRepo repository.UserRepository
	calendar *gcalendar.Client // nil disables calendar sync
	notifier discord.IDiscord  // nil disables notifications
	ics      *ics.Generator
}

// New creates a new task UseCase instance. The calendar client and the
// Discord notifier are optional; pass nil to disable those side effects.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	extract narrative.Service,
	dateMath *datemath.Parser,
	repo repository.TaskRepository,
	userRepo repository.UserRepository,
	calendar *gcalendar.Client,
	notifier discord.IDiscord,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		extract:  extract,
		dateMath: dateMath,
		repo:     repo,
		userRepo: userRepo,
		calendar: calendar,
		notifier: notifier,
		ics:      ics.NewGenerator(),
	}
}
