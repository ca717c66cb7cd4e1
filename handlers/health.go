package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hostel Management System API running"})
}

func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase reports backend and database status, including the first few
// collection names, so deployments can be sanity-checked from a browser.
func TestDatabase(c *gin.Context, store db.Store) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     os.Getenv("DATABASE_NAME") != "",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if store == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	collections, err := store.Collections(c.Request.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["database"] = "connected"
	response["connection_status"] = "Connected"
	response["collections"] = collections

	c.JSON(http.StatusOK, response)
}
