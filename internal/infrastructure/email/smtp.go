package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/config"
)

type SMTPEmailService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

// NotifyActivationFailure alerts the support address that a payment succeeded
// but the ledger could not be updated. The retry sweep usually resolves these
// on its own; the email exists for the ones it cannot.
func (s *SMTPEmailService) NotifyActivationFailure(ctx context.Context, record *subscription.Record, cause error) error {
	subject := fmt.Sprintf("Activation pending: %s", record.SID())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Paid but not activated</h2>
			<p>A payment succeeded but the subscription record could not be activated.</p>
			<ul>
				<li>Record: %s</li>
				<li>User: %s</li>
				<li>Domain: %s</li>
				<li>Error: %s</li>
			</ul>
			<p>The record is flagged for automatic retry. Reconcile manually if it stays pending.</p>
		</body>
		</html>
	`, record.SID(), record.UserEmail(), record.DomainSlug(), cause)

	plainBody := fmt.Sprintf(`
Paid but not activated

A payment succeeded but the subscription record could not be activated.

Record: %s
User:   %s
Domain: %s
Error:  %s

The record is flagged for automatic retry. Reconcile manually if it stays pending.
	`, record.SID(), record.UserEmail(), record.DomainSlug(), cause)

	return s.sendEmail(s.cfg.SupportAddr, subject, htmlBody, plainBody)
}

// SendSubscriptionActivatedEmail confirms activation to the subscriber.
func (s *SMTPEmailService) SendSubscriptionActivatedEmail(to, domainName string) error {
	subject := fmt.Sprintf("Your %s subscription is active", domainName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription active</h2>
			<p>Your subscription to <strong>%s</strong> is now active. All materials and news in this domain are unlocked.</p>
		</body>
		</html>
	`, domainName)

	plainBody := fmt.Sprintf(`
Subscription active

Your subscription to %s is now active. All materials and news in this domain are unlocked.
	`, domainName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
