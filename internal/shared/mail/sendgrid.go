package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/onemapafrica/member-hub-api/internal/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Attachment is a file carried with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single outbound email.
type Message struct {
	ToName      string
	ToAddress   string
	Subject     string
	PlainText   string
	HTML        string
	Attachments []Attachment
}

// Sender delivers messages through the external mail collaborator.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SendGridSender implements Sender using the SendGrid API
type SendGridSender struct {
	apiKey      string
	fromName    string
	fromAddress string
}

func NewSendGridSender(cfg *config.Config) *SendGridSender {
	return &SendGridSender{
		apiKey:      cfg.Mail.SendGridAPIKey,
		fromName:    cfg.Mail.FromName,
		fromAddress: cfg.Mail.FromAddress,
	}
}

// Send sends an email using SendGrid
func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if msg.ToAddress == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := sgmail.NewEmail(s.fromName, s.fromAddress)
	toEmail := sgmail.NewEmail(msg.ToName, msg.ToAddress)

	htmlContent := msg.HTML
	if htmlContent == "" {
		htmlContent = fmt.Sprintf("<pre>%s</pre>", msg.PlainText)
	}

	message := sgmail.NewSingleEmail(
		fromEmail,
		msg.Subject,
		toEmail,
		msg.PlainText,
		htmlContent,
	)

	for _, att := range msg.Attachments {
		attachment := sgmail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(att.Data))
		attachment.SetType(att.ContentType)
		attachment.SetFilename(att.Filename)
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		slog.Error("sendgrid send failed",
			"status", response.StatusCode,
			"body", response.Body,
		)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	slog.Info("mail sent",
		"status", response.StatusCode,
		"to", msg.ToAddress,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)

	return nil
}

// Ensure SendGridSender implements Sender
var _ Sender = (*SendGridSender)(nil)
