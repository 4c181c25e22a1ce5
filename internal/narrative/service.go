package narrative

import (
	"regexp"
	"strconv"
	"strings"

	"lunchbox-ai/internal/model"
)

// Service extracts structured plan data from an LLM narrative. Each method
// is a standalone heuristic so a structured-output contract can replace any
// of them without touching call sites.
type Service interface {
	// Categorize picks one of the four lunchbox categories from the
	// combined user input and narrative text.
	Categorize(input, narrative string) model.Category

	// ExtractSteps pulls an ordered step list out of the narrative.
	ExtractSteps(narrative string) []string

	// ExtractTimeEstimates collects every time mention, normalized to
	// minutes, in scan order. Association with steps is positional.
	ExtractTimeEstimates(narrative string) []int

	// ExtractTips collects tip/reminder lines from the narrative.
	ExtractTips(narrative string) []string
}

type service struct {
	stepPatterns []stepPattern
	timePatterns []timePattern
	tipPatterns  []*regexp.Regexp
}

type stepPattern struct {
	match *regexp.Regexp
	strip *regexp.Regexp
}

type timePattern struct {
	re      *regexp.Regexp
	minutes int // multiplier per unit
}

func New() Service {
	return &service{
		// Tried in order; the first pattern with any match wins.
		stepPatterns: []stepPattern{
			{regexp.MustCompile(`\d+\.\s*[^\n]+`), regexp.MustCompile(`^\d+\.\s*`)},
			{regexp.MustCompile(`(?i)Step \d+[:\-]\s*[^\n]+`), regexp.MustCompile(`(?i)^Step \d+[:\-]\s*`)},
			{regexp.MustCompile(`•\s*[^\n]+`), regexp.MustCompile(`^[•\-]\s*`)},
			{regexp.MustCompile(`-\s*[^\n]+`), regexp.MustCompile(`^[•\-]\s*`)},
		},
		timePatterns: []timePattern{
			{regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|min)`), 1},
			{regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)`), 60},
			{regexp.MustCompile(`(?i)(\d+)\s*(?:days?|d)`), 24 * 60},
		},
		tipPatterns: []*regexp.Regexp{
			regexp.MustCompile(`💡[^\n]+`),
			regexp.MustCompile(`(?i)Tip[:\-]\s*[^\n]+`),
			regexp.MustCompile(`💭[^\n]+`),
			regexp.MustCompile(`(?i)Remember[:\-]\s*[^\n]+`),
		},
	}
}

// Categorize scans keyword buckets in fixed precedence order:
// Veggies, then Savory, then Sweet; Sides is the default. No scoring.
func (s *service) Categorize(input, narrative string) model.Category {
	text := strings.ToLower(input + " " + narrative)

	if containsAny(text, veggiesKeywords) {
		return model.CategoryVeggies
	}
	if containsAny(text, savoryKeywords) {
		return model.CategorySavory
	}
	if containsAny(text, sweetKeywords) {
		return model.CategorySweet
	}
	return model.CategorySides
}

// ExtractSteps returns at most MaxSteps step descriptions. When no numbered,
// "Step N:", bullet, or dash lines exist, paragraphs of the narrative longer
// than MinParagraphChars become pseudo-steps (up to MaxFallbackSteps).
func (s *service) ExtractSteps(narrative string) []string {
	var steps []string

	for _, p := range s.stepPatterns {
		matches := p.match.FindAllString(narrative, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			steps = append(steps, strings.TrimSpace(p.strip.ReplaceAllString(m, "")))
		}
		break
	}

	if len(steps) == 0 {
		for _, para := range strings.Split(narrative, "\n\n") {
			para = strings.TrimSpace(para)
			if len(para) > MinParagraphChars {
				steps = append(steps, para)
			}
			if len(steps) == MaxFallbackSteps {
				break
			}
		}
	}

	if len(steps) > MaxSteps {
		steps = steps[:MaxSteps]
	}
	return steps
}

// ExtractTimeEstimates scans the whole narrative, not per step: minute
// mentions first, then hours, then days, normalized to minutes.
func (s *service) ExtractTimeEstimates(narrative string) []int {
	var estimates []int

	for _, p := range s.timePatterns {
		for _, m := range p.re.FindAllStringSubmatch(narrative, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			estimates = append(estimates, n*p.minutes)
		}
	}

	return estimates
}

// ExtractTips collects matches from every tip pattern, capped at MaxTips.
func (s *service) ExtractTips(narrative string) []string {
	var tips []string

	for _, p := range s.tipPatterns {
		for _, m := range p.FindAllString(narrative, -1) {
			tips = append(tips, strings.TrimSpace(m))
		}
	}

	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
