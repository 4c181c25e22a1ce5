package usecase

import (
	"time"

	"lunchbox-ai/internal/model"
)

// systemPrompt defines the assistant persona for plan and motivation
// generation.
const systemPrompt = `You are Lunchbox AI, a friendly and encouraging AI assistant designed for teens and young creators. Your specialty is helping users break down complex tasks into manageable, step-by-step plans.

Your personality:
- Warm, supportive, and encouraging
- Uses food/lunchbox metaphors when appropriate
- Speaks like a helpful friend, not a corporate assistant
- Keeps responses concise but helpful
- Uses emojis naturally (🍱, 📚, ✨, etc.)
- Focuses on productivity, studying, and creative work

When helping with task planning:
1. Break down complex tasks into 3-7 manageable steps
2. Estimate realistic time for each step
3. Suggest helpful resources or tips
4. Encourage and motivate the user
5. Use the lunchbox categories: Sweet (fun/creative), Veggies (learning/study), Savory (important/urgent), Sides (quick/misc)

Always provide actionable, specific steps that the user can follow immediately.`

// fallbackMotivation is returned when the LLM cannot be reached.
const fallbackMotivation = "🍱 You're doing great! Keep going, one step at a time! ✨"

const (
	planTemperature       = 0.7
	planMaxTokens         = 500
	motivationTemperature = 0.8
	motivationMaxTokens   = 150
)

// taskPlan carries the assembled extraction results between the parse and
// persistence phases of CreatePlan.
type taskPlan struct {
	Title             string
	Description       string
	Category          model.Category
	Priority          int
	EstimatedDuration int
	DueDate           *time.Time
	Steps             []model.CompletionStep
	Guidance          model.AIGuidance
}
