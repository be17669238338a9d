// Package mailer is the mail-sending collaborator. Dispatch is always
// best-effort: callers log and count failures but never propagate them.
package mailer

import (
	"fmt"
	"html"
)

// Message is a single outbound email with both HTML and plain-text
// bodies.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends messages.
type Mailer interface {
	Send(m Message) error
}

// CommentNotification builds the email sent to a post's author when
// someone else comments on their post. Title, username, and comment
// text are user input and must be escaped in the HTML body.
func CommentNotification(to, postTitle, commenter, comment string) Message {
	subject := fmt.Sprintf("New comment on your post: %s", postTitle)
	return Message{
		To:      to,
		Subject: subject,
		HTML: fmt.Sprintf(
			"<p><strong>%s</strong> commented on <strong>%s</strong>:</p><blockquote>%s</blockquote>",
			html.EscapeString(commenter), html.EscapeString(postTitle), html.EscapeString(comment)),
		Text: fmt.Sprintf("%s commented on %s:\n\n%s", commenter, postTitle, comment),
	}
}

// Welcome builds the email sent to a freshly registered user.
func Welcome(to, username, siteName string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Welcome to %s!", siteName),
		HTML: fmt.Sprintf(
			"<p>Hi <strong>%s</strong>, welcome to %s. You can now log in and start posting.</p>",
			html.EscapeString(username), html.EscapeString(siteName)),
		Text: fmt.Sprintf("Hi %s, welcome to %s. You can now log in and start posting.", username, siteName),
	}
}
