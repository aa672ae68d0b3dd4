package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "LightBnB <hello@lightbnb.test>", logger: &logger}
}

func TestSendWelcomeEmail(t *testing.T) {
	s := &fakeSender{}
	c := newTestClient(s)

	require.NoError(t, c.SendWelcomeEmail("eva@example.com", "Eva"))

	require.Len(t, s.sent, 1)
	msg := s.sent[0]
	assert.Equal(t, "LightBnB <hello@lightbnb.test>", msg.From)
	assert.Equal(t, []string{"eva@example.com"}, msg.To)
	assert.Equal(t, "Welcome to LightBnB!", msg.Subject)
	assert.Contains(t, msg.Html, "Welcome, Eva!")
}

func TestSendEmailEscapesData(t *testing.T) {
	s := &fakeSender{}
	c := newTestClient(s)

	require.NoError(t, c.SendWelcomeEmail("x@example.com", "<script>"))
	assert.NotContains(t, s.sent[0].Html, "<script>")
}

func TestSendEmailFailures(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})
	err := c.SendWelcomeEmail("eva@example.com", "Eva")
	assert.ErrorContains(t, err, "rate limited")

	err = newTestClient(&fakeSender{}).SendEmail("eva@example.com", "Hi", Template("missing"), nil)
	assert.ErrorContains(t, err, "failed to parse email template missing")
}

func TestPreviewCoversEveryTemplate(t *testing.T) {
	for name := range PreviewData {
		body, err := Preview(name)
		require.NoError(t, err, name)
		assert.Contains(t, body, "Eva Stanley")
	}
}
