package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/types"
)

const studentsCollection = "student"

func CreateStudent(c *gin.Context, store db.Store) {
	var student types.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := store.CreateDocument(c.Request.Context(), studentsCollection, student)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListStudents(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), studentsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
