package mail

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/hogwarts-cloud/sizer/internal/report"
)

const SubjectReport = "Hardware Dimensioning Output"

type Config struct {
	Server string
	Sender string
}

type Sender struct {
	serverAddress string
	senderName    string
}

// SendReport mails the HTML rendering of rep to recipient.
func (s *Sender) SendReport(recipient string, rep report.Report) error {
	msg, err := s.compose(recipient, rep)
	if err != nil {
		return err
	}

	if err := smtp.SendMail(s.serverAddress, nil, s.senderName, []string{recipient}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func (s *Sender) compose(recipient string, rep report.Report) ([]byte, error) {
	subject := SubjectReport
	if rep.Name != "" {
		subject = fmt.Sprintf("%s: %s", subject, rep.Name)
	}

	msg := &bytes.Buffer{}
	headers := [][2]string{
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
		{"From", s.senderName},
		{"To", recipient},
		{"Subject", subject},
	}
	for _, header := range headers {
		fmt.Fprintf(msg, "%s: %s\r\n", header[0], header[1])
	}
	msg.WriteString("\r\n")

	if err := report.RenderHTML(msg, rep); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return msg.Bytes(), nil
}

func NewSender(config Config) *Sender {
	return &Sender{
		serverAddress: config.Server,
		senderName:    config.Sender,
	}
}
