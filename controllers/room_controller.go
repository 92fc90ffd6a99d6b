package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/services"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

type createRoomRequest struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type"`
	Price  string `json:"price"`
	Status string `json:"status"`
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, rc.rooms.List())
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room, err := rc.rooms.Add(req.Number, req.Type, req.Status, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room Number is required.",
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Delete Room (DELETE /api/rooms/:id?confirm=true)
// ----------------------------------------------------

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	removed, err := rc.rooms.Delete(id, confirmerFromQuery(c))
	if errors.Is(err, services.ErrConfirmationRequired) {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Deletion requires confirm=true.",
		})
		return
	}

	if !removed {
		log.Printf("⚠️ No room found with ID: %s", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
