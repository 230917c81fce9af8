// Package notification sends transactional mail. Failures are logged and
// never propagate: a dead SMTP relay must not fail the request that
// triggered the mail.
package notification

import (
	"fmt"
	"log"
	"strconv"

	"github.com/dustin/go-humanize"
	"gopkg.in/gomail.v2"

	"itam/internal/config"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(cfg *config.Config) *Mailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     port,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

// Enabled reports whether an SMTP relay is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.from != ""
}

func (m *Mailer) send(to []string, subject, htmlBody string) {
	if !m.Enabled() || len(to) == 0 {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("smtp error: %v", err)
		return
	}
	for _, addr := range to {
		log.Println("email sent to: " + addr)
	}
}

// SendExpiringDigest tells the admins how many assets moved to the
// nearing-replacement status.
func (m *Mailer) SendExpiringDigest(to []string, updated int, total int) {
	body := fmt.Sprintf(
		"<p>The replacement-due check has completed.</p>"+
			"<p><b>%s</b> of %s assets were updated to \"Nearing Replacement\".</p>",
		humanize.Comma(int64(updated)), humanize.Comma(int64(total)))
	m.send(to, "Asset replacement check", body)
}

// SendTransferNotice confirms a completed ownership transfer to the acting
// user.
func (m *Mailer) SendTransferNotice(to []string, serialNumber, newOwner, reason string) {
	body := fmt.Sprintf(
		"<p>Asset <b>%s</b> has been transferred to <b>%s</b>.</p><p>Reason: %s</p>",
		serialNumber, newOwner, reason)
	m.send(to, "Asset transfer recorded: "+serialNumber, body)
}
