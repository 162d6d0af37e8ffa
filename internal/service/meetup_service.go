package service

import (
	"context"
	"strings"

	"localitybay/internal/apiclient"
	"localitybay/internal/domain"
)

// MeetupService expone los endpoints de meetups. Las categorías se envían
// separadas por comas.
type MeetupService struct {
	client *apiclient.Client
}

func NewMeetupService(client *apiclient.Client) *MeetupService {
	return &MeetupService{client: client}
}

func (s *MeetupService) List(ctx context.Context, filter domain.MeetupFilter) ([]domain.Meetup, error) {
	q := apiclient.NewQuery().
		Set("search", filter.Search).
		Set("city", filter.City).
		SetJoined("categories", filter.Categories).
		Set("date_from", filter.DateFrom).
		Set("date_to", filter.DateTo).
		SetBool("is_paid", filter.IsPaid).
		SetInt("page", filter.Page).
		SetInt("limit", filter.Limit)

	env, err := apiclient.Get[[]domain.Meetup](ctx, s.client, q.Path("meetups"))
	if err != nil {
		return nil, wrap("fetch meetups", err)
	}
	return env.Data, nil
}

func (s *MeetupService) Get(ctx context.Context, id string) (domain.Meetup, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Meetup{}, wrap("fetch meetup", err)
	}
	env, err := apiclient.Get[domain.Meetup](ctx, s.client, "meetups/"+escaped)
	if err != nil {
		return domain.Meetup{}, wrap("fetch meetup", err)
	}
	return env.Data, nil
}

// Mine devuelve los meetups creados o a los que se unió el usuario.
func (s *MeetupService) Mine(ctx context.Context) ([]domain.Meetup, error) {
	env, err := apiclient.Get[[]domain.Meetup](ctx, s.client, "meetups/my", apiclient.WithAuth())
	if err != nil {
		return nil, wrap("fetch your meetups", err)
	}
	return env.Data, nil
}

func (s *MeetupService) Create(ctx context.Context, input domain.MeetupInput) (domain.Meetup, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Meetup{}, wrap("create meetup", ErrInvalidInput)
	}
	env, err := apiclient.Post[domain.Meetup](ctx, s.client, "meetups", input, apiclient.WithAuth())
	if err != nil {
		return domain.Meetup{}, wrap("create meetup", err)
	}
	return env.Data, nil
}

func (s *MeetupService) Update(ctx context.Context, id string, input domain.MeetupInput) (domain.Meetup, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Meetup{}, wrap("update meetup", err)
	}
	env, err := apiclient.Put[domain.Meetup](ctx, s.client, "meetups/"+escaped, input, apiclient.WithAuth())
	if err != nil {
		return domain.Meetup{}, wrap("update meetup", err)
	}
	return env.Data, nil
}

func (s *MeetupService) Delete(ctx context.Context, id string) error {
	escaped, err := pathID(id)
	if err != nil {
		return wrap("delete meetup", err)
	}
	_, err = apiclient.Delete[any](ctx, s.client, "meetups/"+escaped, apiclient.WithAuth())
	return wrap("delete meetup", err)
}

func (s *MeetupService) Join(ctx context.Context, id string) (domain.Meetup, error) {
	return s.membership(ctx, id, "join", "join meetup")
}

func (s *MeetupService) Leave(ctx context.Context, id string) (domain.Meetup, error) {
	return s.membership(ctx, id, "leave", "leave meetup")
}

func (s *MeetupService) membership(ctx context.Context, id, verb, action string) (domain.Meetup, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Meetup{}, wrap(action, err)
	}
	env, err := apiclient.Post[domain.Meetup](ctx, s.client, "meetups/"+escaped+"/"+verb, nil, apiclient.WithAuth())
	if err != nil {
		return domain.Meetup{}, wrap(action, err)
	}
	return env.Data, nil
}
