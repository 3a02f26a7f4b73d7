package ports

import "context"

// Mailer sends outbound notification email. Sends are best-effort: the
// caller logs a returned error and discards it.
type Mailer interface {
	// SendApproval notifies a freshly approved user, including a login
	// link for the public domain.
	SendApproval(ctx context.Context, to, name string) error
}
