package mail

import (
	"testing"

	"professionals-api/config"

	"github.com/stretchr/testify/assert"
)

func TestNew_FallsBackToLogMailer(t *testing.T) {
	assert.IsType(t, LogMailer{}, New(config.MailConfig{}))
	assert.IsType(t, &SMTPMailer{}, New(config.MailConfig{Host: "smtp.example.com", Port: 587}))
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "Reset\npassword", "hello"))

	assert.Contains(t, msg, "From: a@example.com\r\n")
	assert.Contains(t, msg, "To: b@example.com\r\n")
	assert.Contains(t, msg, "Subject: Reset password\r\n")
	assert.True(t, len(msg) > 0 && msg[len(msg)-5:] == "hello")
}
