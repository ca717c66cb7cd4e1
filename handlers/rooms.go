package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/types"
)

const roomsCollection = "room"

func CreateRoom(c *gin.Context, store db.Store) {
	var room types.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := store.CreateDocument(c.Request.Context(), roomsCollection, room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func ListRooms(c *gin.Context, store db.Store) {
	items, err := store.GetDocuments(c.Request.Context(), roomsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
