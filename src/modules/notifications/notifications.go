package notifications

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/models"
)

// Store WebSocket connections
var notificationClients = make(map[*websocket.Conn]bool)
var mu sync.Mutex
var notificationBroadcast = make(chan models.Notification)

// NotificationWebSocketHandler keeps a client connection registered
// until it disconnects.
func NotificationWebSocketHandler(c *websocket.Conn) {
	mu.Lock()
	notificationClients[c] = true
	mu.Unlock()

	log.Println("New WebSocket client connected for notifications")

	defer func() {
		mu.Lock()
		delete(notificationClients, c)
		mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Println("WebSocket client disconnected:", err)
			break
		}
	}
}

// BroadcastNotifications fans queued notifications out to every
// connected client. Run it once, in its own goroutine.
func BroadcastNotifications() {
	for notification := range notificationBroadcast {
		mu.Lock()
		for client := range notificationClients {
			if err := client.WriteJSON(notification); err != nil {
				log.Println("Error sending notification:", err)
				client.Close()
				delete(notificationClients, client)
			}
		}
		mu.Unlock()
	}
}

// Notify persists a notification for the user and pushes it to connected
// clients.
func Notify(userID uuid.UUID, category string, message string) error {
	notification := models.Notification{
		UserID:   userID,
		Message:  message,
		Category: category,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		return err
	}
	notificationBroadcast <- notification
	return nil
}
