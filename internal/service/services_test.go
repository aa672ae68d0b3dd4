package service

import (
	"testing"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	logger := zerolog.Nop()
	s := &server.Server{
		Logger: &logger,
		DB:     &database.Database{},
		Job:    &job.JobService{},
	}

	services := NewServices(s, repository.NewRepositories(s))

	require.NotNil(t, services.Users)
	require.NotNil(t, services.Properties)
	require.NotNil(t, services.Reservations)
	assert.Same(t, s.Job, services.Job)
	assert.Same(t, s.Logger, services.Properties.logger)
}
