// File: wanderlust/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	CreateSessionHandler gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	SendMessageHandler   gin.HandlerFunc
	StartHandler         gin.HandlerFunc
	RestartHandler       gin.HandlerFunc
	DeleteSessionHandler gin.HandlerFunc
}

// NewHandlerBundle wires the chat handler into a bundle.
func NewHandlerBundle(chat *ChatHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateSessionHandler: chat.CreateSessionHandler,
		GetSessionHandler:    chat.GetSessionHandler,
		SendMessageHandler:   chat.SendMessageHandler,
		StartHandler:         chat.StartHandler,
		RestartHandler:       chat.RestartHandler,
		DeleteSessionHandler: chat.DeleteSessionHandler,
	}
}
