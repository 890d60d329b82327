package main

import (
	"context"
	"log"

	"frontdesk/internal/config"
	"frontdesk/internal/database"
	"frontdesk/internal/modules/reservation"
	"frontdesk/internal/notifier"
	"frontdesk/internal/repository"
)

// One-shot lifecycle sweep for cron or operators: auto-cancels no-shows
// and overdue stays, sends due check-in reminders, then exits. The API
// process runs the same pass on its own schedule; both can run
// concurrently because every write is status-gated.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	var mailer notifier.Notifier = notifier.LogMailer{}
	if cfg.MailConfigured() {
		boot, err := settingsRepo.Get(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		mailer = notifier.NewSMTPMailer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPFrom,
			cfg.SMTPPassword,
			boot.HotelName,
		)
	}

	sweeper := reservation.NewSweeper(
		reservationRepo,
		customerRepo,
		settingsRepo,
		mailer,
		nil,
		nil,
	)

	stats, err := sweeper.Run(context.Background())
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	log.Printf("sweep completed: cancelled=%d reminders=%d failures=%d", stats.Cancelled, stats.Reminders, stats.Failures)
}
