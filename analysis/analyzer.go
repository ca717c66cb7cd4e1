package analysis

import (
	"strings"

	"go-hosteldesk/types"
)

// Word lists for the sentiment score. Presence only: each word counts at most
// once no matter how often it appears.
var (
	negativeWords = []string{"bad", "terrible", "worst", "awful", "dirty", "late", "rude", "leak", "broken", "noisy", "slow"}
	positiveWords = []string{"good", "great", "excellent", "helpful", "clean", "quick"}
)

type categoryEntry struct {
	name     string
	keywords []string
}

// categoryTable is an ordered slice, not a map: on a tie the earlier category
// keeps the lead, so iteration order has to stay fixed.
var categoryTable = []categoryEntry{
	{types.CategoryMaintenance, []string{"leak", "broken", "repair", "power", "electric", "plumbing", "fan", "ac", "heater"}},
	{types.CategoryFood, []string{"mess", "food", "canteen", "meal", "breakfast", "dinner", "lunch"}},
	{types.CategorySecurity, []string{"security", "guard", "gate", "theft", "steal"}},
	{types.CategoryCleanliness, []string{"dirty", "clean", "trash", "garbage"}},
	{types.CategoryDiscipline, []string{"noise", "noisy", "disturb", "fight"}},
}

// Analyze assigns sentiment, category and severity labels to complaint text.
// Matching is case-insensitive substring presence throughout; any input,
// including the empty string, yields a result.
//
// NOTE: there is no word-boundary handling, so short keywords like "ac" can
// match inside unrelated words. That is how the heuristic has always behaved
// and stored labels depend on it.
func Analyze(text string) types.AnalysisResult {
	t := strings.ToLower(text)

	score := 0
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			score--
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			score++
		}
	}

	sentiment := types.SentimentNeutral
	if score > 0 {
		sentiment = types.SentimentPositive
	} else if score < 0 {
		sentiment = types.SentimentNegative
	}

	// Strict > keeps the earlier category on equal hit counts.
	bestCategory := ""
	bestHits := 0
	for _, entry := range categoryTable {
		hits := 0
		for _, k := range entry.keywords {
			if strings.Contains(t, k) {
				hits++
			}
		}
		if hits > bestHits {
			bestCategory = entry.name
			bestHits = hits
		}
	}

	// Severity only escalates for negative text; a winning count of zero or
	// one is medium, two or more is high.
	severity := types.SeverityLow
	if sentiment == types.SentimentNegative {
		if bestHits <= 1 {
			severity = types.SeverityMedium
		} else {
			severity = types.SeverityHigh
		}
	}

	return types.AnalysisResult{
		Sentiment: sentiment,
		Category:  bestCategory,
		Severity:  severity,
	}
}

// AnalyzeComplaint runs Analyze over a complaint's subject and description
// joined with a single space, the exact text the create path labels.
func AnalyzeComplaint(subject, description string) types.AnalysisResult {
	return Analyze(subject + " " + description)
}
