package usecase

import (
	"context"
	"fmt"

	"lunchbox-ai/internal/model"
	"lunchbox-ai/internal/task"
	"lunchbox-ai/pkg/llmprovider"
)

// Motivation generates an encouraging message for a task in progress.
// LLM failures degrade to a canned message instead of erroring: motivation
// is never worth failing a request over.
func (uc *implUseCase) Motivation(ctx context.Context, sc model.Scope, id string) (task.MotivationOutput, error) {
	t, err := uc.getScopedTask(ctx, sc, id)
	if err != nil {
		return task.MotivationOutput{}, err
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: systemPrompt,
		UserPrompt: fmt.Sprintf(
			"Generate an encouraging message for someone working on: %q. They're on step %d of %d. Be motivational and use lunchbox/food metaphors!",
			t.Title, t.CurrentStep+1, t.TotalSteps()),
		Temperature: motivationTemperature,
		MaxTokens:   motivationMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Motivation: LLM failed, using fallback: %v", err)
		return task.MotivationOutput{Message: fallbackMotivation}, nil
	}

	return task.MotivationOutput{Message: resp.Text}, nil
}
