package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"

	"go-hosteldesk/types"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// InitLanguageClient builds the Cloud Natural Language client from the
// base64-encoded NATURAL_LANGUAGE_CREDENTIALS env variable. Returns nil
// without error when the variable is not set, so the cross-check endpoint
// can degrade instead of blocking startup.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		if encodedCreds == "" {
			return
		}

		creds, decodeErr := base64.StdEncoding.DecodeString(encodedCreds)
		if decodeErr != nil {
			err = fmt.Errorf("failed to decode Natural Language credentials: %w", decodeErr)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
	})

	return languageClient, err
}

// AnalyzeSentiment sends text to the Cloud Natural Language API and returns
// the document-level sentiment score and magnitude.
func AnalyzeSentiment(client *language.Client, text string) (types.CloudSentiment, error) {
	var sentiment types.CloudSentiment

	ctx := context.Background()
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}

	sentiment.Score = resp.DocumentSentiment.Score
	sentiment.Magnitude = resp.DocumentSentiment.Magnitude

	return sentiment, nil
}
