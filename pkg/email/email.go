package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"go-talentmatch-backend/config"
	"go-talentmatch-backend/internal/domain"
)

// EmailService delivers interview invitations over SMTP. It is the
// notification collaborator of the request engine: the engine guarantees
// the schedule is complete before calling, and this service neither retries
// nor verifies delivery.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const invitationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Interview Invitation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .link-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Interview Invitation</h1>
        </div>
        <div class="content">
            <p>Hello {{.CandidateName}},</p>
            <p>{{.CompanyName}} would like to interview you.</p>
            <div class="field">
                <div class="label">When:</div>
                <div>{{.When}} ({{.DurationMinutes}} minutes)</div>
            </div>
            <div class="field">
                <div class="label">Join link:</div>
                <div class="link-box"><a href="{{.MeetingLink}}">{{.MeetingLink}}</a></div>
            </div>
        </div>
        <div class="footer">
            <p>Questions? Reply to {{.EmployerEmail}}.</p>
        </div>
    </div>
</body>
</html>`

type invitationData struct {
	CandidateName   string
	CompanyName     string
	EmployerEmail   string
	When            string
	DurationMinutes int
	MeetingLink     string
}

// SendInterviewInvitation renders and sends the invitation to the candidate
// with the employer's contact address on reply-to.
func (s *EmailService) SendInterviewInvitation(ctx context.Context, inv domain.Invitation) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	tmpl, err := template.New("invitation").Parse(invitationTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	data := invitationData{
		CandidateName:   inv.CandidateName,
		CompanyName:     inv.CompanyName,
		EmployerEmail:   inv.EmployerEmail,
		When:            inv.Schedule.Start.Format("Monday, 2 January 2006 at 15:04 MST"),
		DurationMinutes: inv.Schedule.DurationMinutes,
		MeetingLink:     inv.Schedule.MeetingLink,
	}
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Interview invitation from %s", inv.CompanyName)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		inv.CandidateEmail,
		inv.EmployerEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{inv.CandidateEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
