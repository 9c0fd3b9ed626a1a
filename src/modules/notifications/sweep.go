package notifications

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tunde1256/flashcard/src/core/database"
	"github.com/tunde1256/flashcard/src/core/models"
)

// Users silent for this long get a nudge.
const inactivityCutoff = 7 * 24 * time.Hour

// StartInactivitySweep schedules the periodic broadcast to inactive
// users. The sweep only reads users and writes notifications; it shares
// nothing with the quiz flow.
func StartInactivitySweep() *cron.Cron {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 30m", BroadcastInactiveUsers); err != nil {
		log.Fatalf("Failed to schedule inactivity sweep: %v", err)
	}
	scheduler.Start()
	log.Println("Inactivity sweep scheduled")
	return scheduler
}

// BroadcastInactiveUsers notifies every user whose last activity is
// older than the cutoff.
func BroadcastInactiveUsers() {
	db := database.DB
	cutoff := time.Now().UTC().Add(-inactivityCutoff)

	var users []models.User
	if err := db.Where("last_activity_at < ?", cutoff).Find(&users).Error; err != nil {
		log.Printf("Inactivity sweep failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		err := Notify(user.ID, "inactivity", "We miss you! Come back and continue your quizzes.")
		if err != nil {
			log.Printf("Failed to notify user %s: %v", user.ID, err)
		}
	}
}
