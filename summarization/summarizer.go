package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const maxComplaintsForSummary = 50
const maxPromptLength = 15000 // Rough character limit for prompt

// GenerateComplaintsSummary asks OpenAI for a short narrative summary of the
// stored complaints, grouped by what wardens care about: what is broken, how
// bad it is, and what keeps coming up.
func GenerateComplaintsSummary(ctx context.Context, complaints []map[string]interface{}, openaiClient *openai.Client) (string, error) {
	if len(complaints) == 0 {
		return "", fmt.Errorf("no complaints to summarize")
	}

	if len(complaints) > maxComplaintsForSummary {
		log.Printf("Truncating summary input from %d to %d complaints", len(complaints), maxComplaintsForSummary)
		complaints = complaints[:maxComplaintsForSummary]
	}

	var sb strings.Builder
	for _, complaint := range complaints {
		line := formatComplaintLine(complaint)
		if sb.Len()+len(line) > maxPromptLength {
			log.Printf("Prompt length limit reached, summarizing %d characters", sb.Len())
			break
		}
		sb.WriteString(line)
	}

	prompt := sb.String()
	if prompt == "" {
		return "", fmt.Errorf("no complaint text available to summarize")
	}

	resp, err := openaiClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant summarizing hostel complaints for the warden. Group recurring problems, call out high severity items first, and keep it under 150 words.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: "Summarize the following complaints:\n" + prompt,
				},
			},
			MaxTokens: 300,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI summary request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// formatComplaintLine renders one stored complaint document as a prompt line,
// tolerating missing fields since old records may predate the analyzer.
func formatComplaintLine(complaint map[string]interface{}) string {
	str := func(key string) string {
		if v, ok := complaint[key].(string); ok {
			return v
		}
		return ""
	}

	severity := str("severity")
	if severity == "" {
		severity = "unlabeled"
	}
	category := str("category")
	if category == "" {
		category = "uncategorized"
	}

	return fmt.Sprintf("- [%s/%s] %s: %s\n", severity, category, str("subject"), str("description"))
}
