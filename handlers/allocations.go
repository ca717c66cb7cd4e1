package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/types"
)

const allocationsCollection = "allocation"

func CreateAllocation(c *gin.Context, store db.Store) {
	var allocation types.Allocation
	if err := c.ShouldBindJSON(&allocation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if allocation.Status == "" {
		allocation.Status = "active"
	}

	id, err := store.CreateDocument(c.Request.Context(), allocationsCollection, allocation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListAllocations(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), allocationsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
