package narrative

// Limits applied to extraction results.
const (
	MaxSteps          = 7
	MaxFallbackSteps  = 5
	MaxTips           = 5
	MinParagraphChars = 20

	// DefaultStepMinutes is assumed when a step has no positional estimate.
	DefaultStepMinutes = 15
)

// category keyword buckets, checked in this exact order. First hit wins.
var (
	veggiesKeywords = []string{"study", "learn", "homework", "math", "science", "essay"}
	savoryKeywords  = []string{"urgent", "important", "deadline", "due", "asap"}
	sweetKeywords   = []string{"creative", "art", "design", "fun", "project", "build"}
)
