// Package mail delivers outbound notification email over SMTP.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures the SMTP settings and the public domain used to build
// links in outgoing mail.
type Config struct {
	Host     string
	Port     int
	Account  string
	Password string
	// PublicDomain is the externally reachable host of the web app,
	// without scheme.
	PublicDomain string
}

// Mailer sends approval notifications via SMTP with STARTTLS.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Account, cfg.Password),
		from:   cfg.Account,
		domain: cfg.PublicDomain,
	}
}

// SendApproval emails the freshly approved user a login link. The dial
// and send happen synchronously; callers treat a returned error as
// best-effort information, not a reason to fail the approval.
func (m *Mailer) SendApproval(ctx context.Context, to, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Account approved")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour account has been approved!\nLog in to use the website: https://%s/login\n",
		name, m.domain,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send approval mail: %w", err)
	}
	return nil
}
