package service

import "context"

// Mailer is the outbound mail contract the auth core consumes. The real
// transport lives outside this core; only this surface is depended on.
type Mailer interface {
	// Send delivers a message with both plain-text and HTML bodies.
	Send(ctx context.Context, to, subject, text, html string) error
}
