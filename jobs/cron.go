package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CheckinBroadcaster announces the day's arrivals to connected clients.
type CheckinBroadcaster interface {
	BroadcastTodayCheckins(m *melody.Melody) error
}

var checkinBroadcaster CheckinBroadcaster

// SetCheckinBroadcaster wires the broadcaster implementation.
func SetCheckinBroadcaster(b CheckinBroadcaster) {
	checkinBroadcaster = b
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Daily at midnight
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Broadcasting today's check-ins at: %v", now)
		if checkinBroadcaster == nil {
			log.Printf("CheckinBroadcaster is not configured")
			return
		}
		if err := checkinBroadcaster.BroadcastTodayCheckins(m); err != nil {
			log.Printf("Failed to broadcast today's check-ins: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
