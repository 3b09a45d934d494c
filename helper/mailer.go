package helper

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"

	"github.com/najib3112/tifpoint/config"
)

var resetEmailTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Reset Password - TIFPoint</title></head>
<body style="font-family:'Segoe UI',Tahoma,sans-serif;color:#333;padding:20px;">
  <div style="max-width:600px;margin:0 auto;border:1px solid #eee;border-radius:8px;overflow:hidden;">
    <div style="background:#667eea;color:#fff;padding:30px;text-align:center;">
      <h1>TIFPoint</h1>
      <p>Reset Password</p>
    </div>
    <div style="padding:30px;">
      <p>Halo {{.Name}},</p>
      <p>Kami menerima permintaan untuk mereset password akun TIFPoint Anda.
      Klik tombol di bawah untuk membuat password baru:</p>
      <p style="text-align:center;">
        <a href="{{.ResetURL}}" style="background:#667eea;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none;">Reset Password</a>
      </p>
      <p>Link ini berlaku selama 1 jam. Jika Anda tidak meminta reset password,
      abaikan email ini.</p>
    </div>
  </div>
</body>
</html>`))

type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

func NewMailer() *Mailer {
	return &Mailer{
		Host:     config.Env.EmailHost,
		Port:     config.Env.EmailPort,
		Username: config.Env.EmailUser,
		Password: config.Env.EmailPassword,
		Sender:   config.Env.SenderEmail,
	}
}

// Configured reports whether SMTP credentials are present. When they are
// not, the forgot-password flow falls back to returning the raw token in
// the response for development.
func (m *Mailer) Configured() bool {
	return m.Host != "" && m.Username != "" && m.Password != ""
}

func (m *Mailer) SendPasswordResetEmail(toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", config.Env.FrontendURL, resetToken)

	var body bytes.Buffer
	err := resetEmailTemplate.Execute(&body, struct {
		Name     string
		ResetURL string
	}{Name: toName, ResetURL: resetURL})
	if err != nil {
		return err
	}

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: \"TIFPoint System\" <%s>\r\n", m.Sender))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", toEmail))
	msg.WriteString("Subject: Reset Password - TIFPoint\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	if err := smtp.SendMail(addr, auth, m.Sender, []string{toEmail}, msg.Bytes()); err != nil {
		log.Printf("send reset email to %s failed: %v", toEmail, err)
		return err
	}
	return nil
}
