package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// EmailSvc is an implementation of the service.EmailService interface
type EmailSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
}

// NewEmailService creates a new EmailSvc
func NewEmailService(deps Dependencies) *EmailSvc {
	return &EmailSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
	}
}

// SendEligibilityDecision sends the eligibility verdict to the lead
func (s *EmailSvc) SendEligibilityDecision(ctx context.Context, lead *models.Lead, result *models.EligibilityResult) error {
	// Skip if the lead has no email on file
	if lead.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Your loan eligibility result: %s", result.Status)

	var verdictText string
	if result.Status == models.StatusEligible {
		verdictText = `<p style="color: green; font-weight: bold;">Good news — you are eligible!</p>`
	} else {
		verdictText = `<p style="color: red; font-weight: bold;">Unfortunately, the requested amount exceeds your current eligibility.</p>`
	}

	body := fmt.Sprintf(`
	<h2>Loan Eligibility Result</h2>
	<p>Dear %s,</p>

	%s

	<table style="border-collapse: collapse; width: 100%%;">
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Total Monthly Income:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">₹%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Total Obligations:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">₹%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Final Eligibility:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">₹%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Status:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Date:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
	</table>

	<p>%s</p>

	<p>Our team will reach out to you with the next steps.</p>

	<p>
	Best regards,<br>
	CRM Service Team
	</p>
	`,
		lead.Name,
		verdictText,
		models.FormatCurrency(result.TotalIncome),
		models.FormatCurrency(result.TotalObligations),
		models.FormatCurrency(result.FinalEligibility),
		result.Status,
		time.Now().Format("2006-01-02 15:04:05"),
		result.ShortfallMessage,
	)

	if err := s.sendEmail(lead.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Eligibility decision email sent to %s for lead %d", lead.Email, lead.ID)

	return nil
}

// SendLeadAssigned notifies an employee by email that a lead was assigned to them
func (s *EmailSvc) SendLeadAssigned(ctx context.Context, employee *models.Employee, lead *models.Lead) error {
	if employee.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("New lead assigned: %s", lead.Name)

	body := fmt.Sprintf(`
	<h2>New Lead Assigned</h2>
	<p>Dear %s,</p>

	<p>The following lead has been assigned to you:</p>

	<table style="border-collapse: collapse; width: 100%%;">
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Name:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Phone:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Product:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
		<tr>
			<td style="padding: 8px; border: 1px solid #ddd;"><strong>Source:</strong></td>
			<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
		</tr>
	</table>

	<p>Please follow up within one business day.</p>

	<p>
	Best regards,<br>
	CRM Service Team
	</p>
	`,
		employee.Name,
		lead.Name,
		lead.Phone,
		lead.Product,
		lead.Source,
	)

	if err := s.sendEmail(employee.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Lead assignment email sent to %s for lead %d", employee.Email, lead.ID)

	return nil
}

// sendEmail sends an email using the SMTP server
func (s *EmailSvc) sendEmail(to, subject, body string) error {
	// Create a new message
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.Email.SenderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	// Create a new dialer
	d := gomail.NewDialer(
		s.config.Email.SMTPHost,
		s.config.Email.SMTPPort,
		s.config.Email.SMTPUser,
		s.config.Email.SMTPPassword,
	)

	// Send the email
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
