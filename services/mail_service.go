package services

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"github.com/sepnoty/sepnoty_backend/models"
)

// MailService sends admin notification emails for new submissions. Delivery
// is best-effort: failures are logged and never fail the request.
type MailService struct {
	host   string
	port   int
	user   string
	pass   string
	to     string
	logger *log.Logger
}

func NewMailService(host string, port int, user, pass, to string) *MailService {
	return &MailService{
		host:   host,
		port:   port,
		user:   user,
		pass:   pass,
		to:     to,
		logger: log.New(os.Stdout, "[MAIL] ", log.LstdFlags),
	}
}

// Enabled reports whether SMTP notifications are configured.
func (s *MailService) Enabled() bool {
	return s.host != "" && s.to != ""
}

func (s *MailService) send(subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Printf("Failed to send notification email: %v", err)
	}
}

// NotifyMembership emails the admin about a new membership application.
func (s *MailService) NotifyMembership(app models.MembershipApplication) {
	if !s.Enabled() {
		return
	}
	subject := "New Membership Application"
	body := fmt.Sprintf(
		"A new membership application was submitted.\n\nName: %s\nEmail: %s\nPhone: %s\nSubmitted: %s\nApplication ID: %s\n",
		app.Name, app.Email, app.Phone, app.SubmittedAt.Format("2006-01-02 15:04:05 MST"), app.ID)
	s.send(subject, body)
}

// NotifyScheduleCall emails the admin about a new call booking.
func (s *MailService) NotifyScheduleCall(call models.ScheduleCall) {
	if !s.Enabled() {
		return
	}
	subject := "New Call Booking Request"
	body := fmt.Sprintf(
		"A new call booking was requested.\n\nName: %s\nEmail: %s\nPhone: %s\nPurpose: %s\nDate: %s %s (%s)\n",
		call.ClientName, call.ClientEmail, call.ClientPhone, call.PurposeOfCall, call.Date, call.Time, call.Timezone)
	s.send(subject, body)
}
