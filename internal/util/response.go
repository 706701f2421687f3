package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes {"success": true, "message": ..., "data": ...}.
// message and data may each be empty/nil and are omitted when so.
func Success(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// OK is Success with http.StatusOK.
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created is Success with http.StatusCreated.
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Error writes {"success": false, "message": ...}. Internal error
// detail never goes into msg; callers pass a short human-readable text.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}
