package types

// Sentiment labels produced by the complaint analyzer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Severity labels used to triage complaints.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Complaint categories. An empty category means no keyword list matched.
const (
	CategoryMaintenance = "maintenance"
	CategoryFood        = "food"
	CategorySecurity    = "security"
	CategoryCleanliness = "cleanliness"
	CategoryDiscipline  = "discipline"
)

// AnalysisResult is the label set the analyzer assigns to complaint text.
// Category is omitted when no category keywords were found.
type AnalysisResult struct {
	Sentiment string `json:"sentiment" firestore:"sentiment"`
	Category  string `json:"category,omitempty" firestore:"category,omitempty"`
	Severity  string `json:"severity" firestore:"severity"`
}

// CloudSentiment holds the document sentiment returned by the Cloud Natural
// Language API, used to spot-check the rule-based labels.
type CloudSentiment struct {
	Score     float32 `json:"score"`
	Magnitude float32 `json:"magnitude"`
}
