package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/growai/fincoach/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendWelcome sends the signup confirmation email
func (s *Sender) SendWelcome(to, username string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to GrowAI"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your GrowAI account is ready. Pick your financial profile and add "+
			"your bank details to get a personalized dashboard, smart nudges and "+
			"a tax estimate.\n\nBest regards,\nThe GrowAI Team",
		username,
	)
	e.Text = []byte(body)

	return s.send(e)
}

// SendTaxReminder sends an advance-tax installment reminder
func (s *Sender) SendTaxReminder(to, username string, amount int, dueDate time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Advance Tax Installment Due Soon"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your estimated advance tax installment of ₹%d is due on %s.\n"+
			"Paying on time helps you avoid late-payment interest under "+
			"sections 234B and 234C.\n\nBest regards,\nThe GrowAI Team",
		username, amount, dueDate.Format("2 January 2006"),
	)
	e.Text = []byte(body)

	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}
