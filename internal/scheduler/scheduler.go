package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/growai/fincoach/internal/repository"
	"github.com/growai/fincoach/internal/tax"
	"github.com/growai/fincoach/internal/utils/email"
)

// reminderWindow is how far ahead of an advance-tax due date reminders go out.
const reminderWindow = 7 * 24 * time.Hour

// Scheduler runs the daily advance-tax reminder job.
type Scheduler struct {
	cron   *cron.Cron
	repo   *repository.Repository
	mailer *email.Sender
	log    *logrus.Logger
}

// NewScheduler initializes a new scheduler
func NewScheduler(repo *repository.Repository, mailer *email.Sender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		repo:   repo,
		mailer: mailer,
		log:    log,
	}
}

// Start registers the daily job at the given hour and launches the cron loop.
func (s *Scheduler) Start(reminderHour int) error {
	_, err := s.cron.AddFunc(fmt.Sprintf("0 %d * * *", reminderHour), func() {
		if err := s.RunTaxReminders(time.Now().UTC()); err != nil {
			s.log.Errorf("Tax reminder run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Scheduler started, tax reminders at %02d:00 UTC", reminderHour)
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// NextDueDate returns the first advance-tax installment date on or after now.
// Installments fall on June 15, September 15, December 15 and March 15.
func NextDueDate(now time.Time) time.Time {
	year := now.Year()
	dates := []time.Time{
		time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if !d.Before(now.Truncate(24 * time.Hour)) {
			return d
		}
	}
	return time.Date(year+1, time.March, 15, 0, 0, 0, 0, time.UTC)
}

// RunTaxReminders emails every user with a quarterly tax liability when an
// installment due date falls inside the reminder window.
func (s *Scheduler) RunTaxReminders(now time.Time) error {
	due := NextDueDate(now)
	if due.Sub(now) > reminderWindow {
		return nil
	}

	owners, err := s.repo.ListSnapshots()
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	var sent int
	for _, o := range owners {
		estimate, err := tax.Estimate(o.Snapshot.Income.Monthly*12, "")
		if err != nil || estimate.QuarterlyTax <= 0 {
			continue
		}
		if err := s.mailer.SendTaxReminder(o.Email, o.Username, estimate.QuarterlyTax, due); err != nil {
			s.log.Warnf("Tax reminder to user %d failed: %v", o.UserID, err)
			continue
		}
		sent++
	}

	s.log.Infof("Tax reminder run complete: %d sent, due date %s", sent, due.Format("2006-01-02"))
	return nil
}
