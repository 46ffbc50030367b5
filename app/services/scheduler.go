package services

import (
	"database/sql"
	"log"
	"time"

	"brightwood-schools/app/routes/dashboard"
	"brightwood-schools/app/routes/fees"

	"github.com/robfig/cron/v3"
)

// StartScheduler starts the background jobs: the dashboard snapshot refresh
// every 30 seconds and the overdue-fee sweep once a day. The returned cron
// should be stopped on shutdown.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 30s", func() {
		if _, err := dashboard.Refresh(db); err != nil {
			log.Printf("Error refreshing dashboard snapshot: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule dashboard refresh:", err)
	}

	if _, err := c.AddFunc("5 0 * * *", func() {
		changed, err := fees.SweepOverdueFees(db, time.Now())
		if err != nil {
			log.Printf("Error sweeping overdue fees: %v", err)
			return
		}
		if changed > 0 {
			log.Printf("Marked %d fees overdue", changed)
		}
	}); err != nil {
		log.Fatal("Failed to schedule overdue fee sweep:", err)
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}
