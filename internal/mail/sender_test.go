package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	gomail "github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testConfig() Config {
	return Config{
		Host:        "smtp.example.com",
		Port:        587,
		UseSSL:      true,
		Username:    "user",
		Password:    "secret",
		SenderEmail: "noreply@example.com",
		SenderName:  "Continuous Improvement Team",
	}
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	s := NewSMTPSenderWithDialer(testConfig(), &fakeDialer{})

	m := s.BuildMessage("champion@example.com", "Subject line", "<p>hi</p>")

	assert.Equal(t, []string{`"Continuous Improvement Team" <noreply@example.com>`}, m.GetHeader("From"))
	assert.Equal(t, []string{"champion@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Subject line"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"1"}, m.GetHeader("X-Priority"))
	assert.Equal(t, []string{"High"}, m.GetHeader("Importance"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/html")
	assert.Contains(t, buf.String(), "<p>hi</p>")
}

func TestSMTPSender_Send(t *testing.T) {
	t.Run("delivers through the dialer", func(t *testing.T) {
		d := &fakeDialer{}
		s := NewSMTPSenderWithDialer(testConfig(), d)

		err := s.Send(context.Background(), "champion@example.com", "s", "<p>b</p>")

		assert.NoError(t, err)
		assert.Len(t, d.sent, 1)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("535 authentication failed")}
		s := NewSMTPSenderWithDialer(testConfig(), d)

		err := s.Send(context.Background(), "champion@example.com", "s", "<p>b</p>")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "535 authentication failed")
	})

	t.Run("rejects empty recipient", func(t *testing.T) {
		d := &fakeDialer{}
		s := NewSMTPSenderWithDialer(testConfig(), d)

		err := s.Send(context.Background(), "", "s", "b")

		assert.Error(t, err)
		assert.Empty(t, d.sent)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		d := &fakeDialer{}
		s := NewSMTPSenderWithDialer(testConfig(), d)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Send(ctx, "champion@example.com", "s", "b")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, d.sent)
	})
}

func TestNewDialer(t *testing.T) {
	t.Run("starttls required when ssl enabled", func(t *testing.T) {
		d := newDialer(testConfig())
		assert.Equal(t, gomail.MandatoryStartTLS, d.StartTLSPolicy)
		assert.False(t, d.SSL)
		assert.Equal(t, "smtp.example.com", d.TLSConfig.ServerName)
	})

	t.Run("implicit tls on 465", func(t *testing.T) {
		cfg := testConfig()
		cfg.Port = 465
		d := newDialer(cfg)
		assert.True(t, d.SSL)
	})

	t.Run("opportunistic when ssl disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.UseSSL = false
		cfg.InsecureSkipVerify = true
		d := newDialer(cfg)
		assert.Equal(t, gomail.OpportunisticStartTLS, d.StartTLSPolicy)
		assert.True(t, d.TLSConfig.InsecureSkipVerify)
	})
}

func TestLogSender_Send(t *testing.T) {
	assert.NoError(t, NewLogSender().Send(context.Background(), "a@example.com", "s", "b"))
}

func TestRenderChampionAssigned(t *testing.T) {
	body, err := RenderChampionAssigned(ChampionAssignedData{
		ChampionName:     "Marta Gil",
		FullName:         "Ana Ruiz",
		CurrentSituation: "Manual <counting>",
		IdeaDescription:  "Use a scale",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Hello Marta Gil")
	assert.Contains(t, body, "Ana Ruiz")
	assert.Contains(t, body, "Manual &lt;counting&gt;")
	assert.NotContains(t, body, "<counting>")
}
