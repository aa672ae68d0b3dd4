package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, name string
	err      error
}

func (m *fakeMailer) SendWelcomeEmail(to, name string) error {
	m.to, m.name = to, name
	return m.err
}

func newTestService(m welcomeMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("eva@example.com", "Eva")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "eva@example.com", Name: "Eva"}, p)
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	m := &fakeMailer{}
	task, err := NewWelcomeEmailTask("eva@example.com", "Eva")
	require.NoError(t, err)

	require.NoError(t, newTestService(m).Mux().ProcessTask(context.Background(), task))
	assert.Equal(t, "eva@example.com", m.to)
	assert.Equal(t, "Eva", m.name)
}

func TestHandleWelcomeEmailTaskMailerError(t *testing.T) {
	boom := errors.New("provider down")
	task, err := NewWelcomeEmailTask("eva@example.com", "Eva")
	require.NoError(t, err)

	err = newTestService(&fakeMailer{err: boom}).handleWelcomeEmailTask(context.Background(), task)
	assert.ErrorIs(t, err, boom)
}

func TestHandleWelcomeEmailTaskBadPayload(t *testing.T) {
	task := asynq.NewTask(TaskWelcome, []byte("{not json"), asynq.Timeout(time.Second))

	err := newTestService(&fakeMailer{}).handleWelcomeEmailTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
