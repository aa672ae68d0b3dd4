package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/hibiken/asynq"
)

type fakeUserStore struct {
	byEmail map[string]*model.User
	added   []model.NewUser
	err     error
}

func (f *fakeUserStore) GetUserWithEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, notFound("users")
}

func (f *fakeUserStore) GetUserWithID(_ context.Context, id int) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, notFound("users")
}

func (f *fakeUserStore) AddUser(_ context.Context, in model.NewUser) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, in)
	return &model.User{ID: len(f.added), Name: in.Name, Email: in.Email, Password: in.Password}, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type fakePropertyStore struct {
	criteria model.SearchCriteria
	limit    int
	results  []model.PropertyWithRating
	added    *model.NewProperty
	err      error
}

func (f *fakePropertyStore) GetAllProperties(_ context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyWithRating, error) {
	f.criteria, f.limit = criteria, limit
	return f.results, f.err
}

func (f *fakePropertyStore) AddProperty(_ context.Context, in model.NewProperty) (*model.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = &in
	return &model.Property{ID: 42, OwnerID: in.OwnerID, Title: in.Title, Active: true}, nil
}

type fakeReservationStore struct {
	guestID, limit int
	results        []model.ReservationWithProperty
	err            error
}

func (f *fakeReservationStore) GetAllReservations(_ context.Context, guestID, limit int) ([]model.ReservationWithProperty, error) {
	f.guestID, f.limit = guestID, limit
	return f.results, f.err
}
