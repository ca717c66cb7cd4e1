package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/types"
)

const attendanceCollection = "attendance"

func CreateAttendance(c *gin.Context, store db.Store) {
	var att types.Attendance
	if err := c.ShouldBindJSON(&att); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if att.Status == "" {
		att.Status = "present"
	}

	id, err := store.CreateDocument(c.Request.Context(), attendanceCollection, att)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListAttendance(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), attendanceCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
