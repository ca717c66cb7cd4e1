package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/types"
)

const staffCollection = "staff"

func CreateStaff(c *gin.Context, store db.Store) {
	var staff types.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := store.CreateDocument(c.Request.Context(), staffCollection, staff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListStaff(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), staffCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
