package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-hosteldesk/db"
	"go-hosteldesk/routes"
	"go-hosteldesk/types"
)

func setupRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(store, nil)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateComplaintStoresAnalysisLabels(t *testing.T) {
	store := new(MockStore)
	store.On("CreateDocument", mock.Anything, "complaint", mock.MatchedBy(func(data interface{}) bool {
		complaint, ok := data.(types.Complaint)
		return ok &&
			complaint.Sentiment == types.SentimentNegative &&
			complaint.Category == types.CategoryMaintenance &&
			complaint.Severity == types.SeverityMedium
	})).Return("complaint-1", nil).Once()

	r := setupRouter(store)
	w := postJSON(t, r, "/api/complaints", gin.H{
		"raised_by_roll_no": "21CS042",
		"subject":           "Room condition",
		"description":       "the room is dirty and broken",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"complaint-1"}`, w.Body.String())
	store.AssertExpectations(t)
}

func TestCreateComplaintRequiresSubjectAndDescription(t *testing.T) {
	store := new(MockStore)

	r := setupRouter(store)
	w := postJSON(t, r, "/api/complaints", gin.H{"subject": "no description"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestListComplaints(t *testing.T) {
	store := new(MockStore)
	store.On("GetDocuments", mock.Anything, "complaint").Return([]map[string]interface{}{
		{"id": "c1", "subject": "Leak", "severity": "high"},
		{"id": "c2", "subject": "Noise", "severity": "medium"},
	}, nil).Once()

	r := setupRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 2)
	assert.Equal(t, "c1", body.Items[0]["id"])
	store.AssertExpectations(t)
}

func TestAnalyzePreviewReturnsLabels(t *testing.T) {
	r := setupRouter(new(MockStore))
	w := postJSON(t, r, "/api/complaints/analyze", gin.H{
		"subject":     "power leak",
		"description": "broken fan, very noisy",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.SentimentNegative, result.Sentiment)
	assert.Equal(t, types.CategoryMaintenance, result.Category)
	assert.Equal(t, types.SeverityHigh, result.Severity)
}

func TestAnalyzePreviewEmptyBody(t *testing.T) {
	r := setupRouter(new(MockStore))
	w := postJSON(t, r, "/api/complaints/analyze", gin.H{})

	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "neutral", raw["sentiment"])
	assert.Equal(t, "low", raw["severity"])
	assert.NotContains(t, raw, "category", "empty text should produce no category")
}

func TestAnalyzePreviewDoesNotPersist(t *testing.T) {
	store := new(MockStore)

	r := setupRouter(store)
	w := postJSON(t, r, "/api/complaints/analyze", gin.H{
		"subject":     "dirty mess hall",
		"description": "the food was terrible",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeCloudWithoutClient(t *testing.T) {
	// setupRouter wires a nil Natural Language client.
	r := setupRouter(new(MockStore))
	w := postJSON(t, r, "/api/complaints/analyze/cloud", gin.H{"subject": "leak"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSummarizeComplaintsWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	r := setupRouter(new(MockStore))
	req := httptest.NewRequest(http.MethodGet, "/api/complaints/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
