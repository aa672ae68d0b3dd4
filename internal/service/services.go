package service

import (
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
	Job          *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:        NewUserService(repos.Users, s.Job.Client, s.Logger),
		Properties:   NewPropertyService(repos.Properties, s.Logger),
		Reservations: NewReservationService(repos.Reservations),
		Job:          s.Job,
	}
}
