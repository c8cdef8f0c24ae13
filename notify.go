package main

import (
	"fmt"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPNotifier sends plain-text notification emails. Transport failures
// are logged and reported as false; they never reach the caller as an
// error.
type SMTPNotifier struct {
	client *mail.Client
	from   string
	logger *zap.Logger
}

func NewSMTPNotifier(cfg SMTPConfig, logger *zap.Logger) (*SMTPNotifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPNotifier{client: client, from: cfg.From, logger: logger}, nil
}

func (n *SMTPNotifier) Send(to, subject, body string) bool {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		n.logger.Warn("invalid sender address", zap.String("from", n.from), zap.Error(err))
		return false
	}
	if err := msg.To(to); err != nil {
		n.logger.Warn("invalid recipient address", zap.String("to", to), zap.Error(err))
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSend(msg); err != nil {
		n.logger.Warn("failed to send email", zap.String("to", to), zap.Error(err))
		return false
	}
	n.logger.Debug("email sent", zap.String("to", to))
	return true
}

func shortlistedSubject(jobTitle string) string {
	return fmt.Sprintf("Congratulations! You're Shortlisted for %s!", jobTitle)
}

func shortlistedBody(applicant, jobTitle, hrName string, score float64) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"We are pleased to inform you that you have been shortlisted for the %s position at %s's company.\n"+
		"Your match score was %.2f%%.\n\n"+
		"We will be in touch shortly regarding the next steps in the hiring process.\n\n"+
		"Best regards,\n"+
		"The HR Team",
		applicant, jobTitle, hrName, score)
}

func rejectedSubject(jobTitle string) string {
	return fmt.Sprintf("Update on Your Application for %s", jobTitle)
}

func rejectedBody(applicant, jobTitle, hrName string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Thank you for your interest in the %s position at %s's company.\n"+
		"We appreciate you taking the time to apply.\n\n"+
		"After careful consideration, we regret to inform you that we will not be moving forward with your application at this time.\n\n"+
		"We wish you the best in your job search.\n\n"+
		"Sincerely,\n"+
		"The HR Team",
		applicant, jobTitle, hrName)
}
