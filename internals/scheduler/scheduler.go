package scheduler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"churchms_backend/internals/configs"
	NotificationService "churchms_backend/internals/features/notifications/service"
)

// Start registers the recurring jobs and launches the cron runner. The
// returned cron can be stopped during shutdown. Jobs run behind cron's
// Recover chain so a panicking job cannot take the process down.
func Start(db *gorm.DB) *cron.Cron {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	notifSvc := NotificationService.NewNotificationService(db)

	// birthday sweep at midnight UTC
	if _, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		created, err := notifSvc.CheckBirthdays(ctx)
		if err != nil {
			log.Printf("[ERROR] birthday sweep: %v", err)
			return
		}
		if created > 0 {
			log.Printf("[INFO] birthday sweep created %d notifications", created)
		}
	}); err != nil {
		log.Printf("[ERROR] schedule birthday sweep: %v", err)
	}

	// keep the free-tier dyno from idling out
	if _, err := c.AddFunc("*/10 * * * *", func() {
		resp, err := http.Get(configs.SelfURL + "/health")
		if err != nil {
			log.Printf("[WARN] keep-alive ping failed: %v", err)
			return
		}
		resp.Body.Close()
	}); err != nil {
		log.Printf("[ERROR] schedule keep-alive: %v", err)
	}

	c.Start()
	return c
}
