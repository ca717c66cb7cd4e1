package handlers

import (
	"log"
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-hosteldesk/analysis"
	"go-hosteldesk/db"
	"go-hosteldesk/nlp"
	"go-hosteldesk/types"
)

const complaintsCollection = "complaint"

// analyzeRequest is the body for the preview endpoints. Both fields are
// optional; missing fields are treated as empty strings, like the create path.
type analyzeRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// CreateComplaint labels the complaint text and stores the record with the
// labels merged in. Labels are assigned once here and never recomputed.
func CreateComplaint(c *gin.Context, store db.Store) {
	var complaint types.Complaint
	if err := c.ShouldBindJSON(&complaint); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := analysis.AnalyzeComplaint(complaint.Subject, complaint.Description)
	complaint.Sentiment = result.Sentiment
	complaint.Category = result.Category
	complaint.Severity = result.Severity

	id, err := store.CreateDocument(c.Request.Context(), complaintsCollection, complaint)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListComplaints(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), complaintsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AnalyzeComplaint previews the labels a complaint would get without storing
// anything. The response body is the raw analysis result.
func AnalyzeComplaint(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis.AnalyzeComplaint(req.Subject, req.Description))
}

// AnalyzeComplaintCloud cross-checks the rule-based labels against the Cloud
// Natural Language sentiment score. Only available when the language client
// was configured at startup.
func AnalyzeComplaintCloud(c *gin.Context, nlpClient *language.Client) {
	if nlpClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Natural Language client not configured"})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := req.Subject + " " + req.Description
	cloud, err := nlp.AnalyzeSentiment(nlpClient, text)
	if err != nil {
		log.Printf("Error analyzing sentiment via Cloud NL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": analysis.Analyze(text),
		"cloud":    cloud,
	})
}
