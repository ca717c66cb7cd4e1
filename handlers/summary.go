package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-hosteldesk/db"
	"go-hosteldesk/summarization"
)

// SummarizeComplaints returns an OpenAI-generated narrative of the stored
// complaints. Requires OPENAI_API_KEY; without it the endpoint reports itself
// unavailable rather than failing startup.
func SummarizeComplaints(c *gin.Context, store db.Store) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "OPENAI_API_KEY not configured"})
		return
	}

	complaints, err := store.GetDocuments(c.Request.Context(), complaintsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(complaints) == 0 {
		c.JSON(http.StatusOK, gin.H{"summary": "No complaints on record."})
		return
	}

	client := openai.NewClient(apiKey)
	summary, err := summarization.GenerateComplaintsSummary(c.Request.Context(), complaints, client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
