// Package mailer sends the plain-text completion notices the mock backend
// mails to purchasers.
package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string
	From     string
	To       []string
	Subject  string
	Body     string
}
