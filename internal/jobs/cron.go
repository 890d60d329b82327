package jobs

import (
	"context"
	"log"

	"frontdesk/internal/modules/reservation"

	"github.com/robfig/cron/v3"
)

// InitCronJobs schedules the lifecycle sweep and runs one pass right
// away, so a restarted process catches up on missed cutoffs without
// waiting for the next tick.
func InitCronJobs(c *cron.Cron, sweeper *reservation.Sweeper, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if _, err := sweeper.Run(context.Background()); err != nil {
			log.Printf("sweep failed err=%v", err)
		}
	})
	if err != nil {
		return err
	}

	go func() {
		if _, err := sweeper.Run(context.Background()); err != nil {
			log.Printf("initial sweep failed err=%v", err)
		}
	}()

	c.Start()
	log.Printf("cron jobs initialized spec=%q", spec)
	return nil
}
