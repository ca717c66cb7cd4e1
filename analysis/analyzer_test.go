package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hosteldesk/analysis"
	"go-hosteldesk/types"
)

func TestAnalyzeEmptyText(t *testing.T) {
	res := analysis.Analyze("")

	assert.Equal(t, types.SentimentNeutral, res.Sentiment)
	assert.Empty(t, res.Category, "no keywords means no category")
	assert.Equal(t, types.SeverityLow, res.Severity)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := "the mess food was terrible and the staff were rude"

	first := analysis.Analyze(text)
	second := analysis.Analyze(text)

	assert.Equal(t, first, second)
}

func TestAnalyzeNegativeWithCategoryTie(t *testing.T) {
	// "dirty" and "broken" are both negative words; maintenance and
	// cleanliness score one hit each, and maintenance is listed first.
	res := analysis.Analyze("the room is dirty and broken")

	assert.Equal(t, types.SentimentNegative, res.Sentiment)
	assert.Equal(t, types.CategoryMaintenance, res.Category)
	assert.Equal(t, types.SeverityMedium, res.Severity)
}

func TestAnalyzePositiveText(t *testing.T) {
	res := analysis.Analyze("excellent and clean service")

	assert.Equal(t, types.SentimentPositive, res.Sentiment)
	assert.Equal(t, types.SeverityLow, res.Severity, "positive text never escalates")
}

func TestAnalyzeHighSeverity(t *testing.T) {
	// Three negative words and four maintenance keywords.
	res := analysis.Analyze("power leak and broken fan, very noisy")

	assert.Equal(t, types.SentimentNegative, res.Sentiment)
	assert.Equal(t, types.CategoryMaintenance, res.Category)
	assert.Equal(t, types.SeverityHigh, res.Severity)
}

func TestAnalyzeSentimentCancellation(t *testing.T) {
	// "dirty" (-1) and "clean" (+1) cancel out. The heuristic accepts this.
	res := analysis.Analyze("the dirty hallway is clean now")

	assert.Equal(t, types.SentimentNeutral, res.Sentiment)
	assert.Equal(t, types.SeverityLow, res.Severity)
}

func TestAnalyzeNegativeWithoutCategory(t *testing.T) {
	// "slow" is a negative word but matches no category list; the zero-hit
	// case still counts as medium severity.
	res := analysis.Analyze("the service was slow")

	assert.Equal(t, types.SentimentNegative, res.Sentiment)
	assert.Empty(t, res.Category)
	assert.Equal(t, types.SeverityMedium, res.Severity)
}

func TestAnalyzeCaseInsensitive(t *testing.T) {
	res := analysis.Analyze("BROKEN Heater In Room 204")

	assert.Equal(t, types.SentimentNegative, res.Sentiment)
	assert.Equal(t, types.CategoryMaintenance, res.Category)
}

func TestAnalyzeRepeatedWordCountsOnce(t *testing.T) {
	// "bad" three times is still a single -1; one negative word alone is
	// medium, not high.
	res := analysis.Analyze("bad bad bad")

	assert.Equal(t, types.SentimentNegative, res.Sentiment)
	assert.Equal(t, types.SeverityMedium, res.Severity)
}

func TestAnalyzeSubstringMatching(t *testing.T) {
	// "ac" matches inside "backpack". Known quirk of substring matching,
	// preserved on purpose.
	res := analysis.Analyze("someone took my backpack")

	assert.Equal(t, types.CategoryMaintenance, res.Category)
}

func TestAnalyzeCategoryOutscoresEarlier(t *testing.T) {
	// Two food hits beat one maintenance hit even though maintenance is
	// listed first.
	res := analysis.Analyze("the canteen breakfast had a leak of flavor")

	assert.Equal(t, types.CategoryFood, res.Category)
}

func TestAnalyzeComplaintJoinsSubjectAndDescription(t *testing.T) {
	joined := analysis.Analyze("water leak broken tap")
	split := analysis.AnalyzeComplaint("water leak", "broken tap")

	assert.Equal(t, joined, split)
}
