package service

import (
	"context"
	"io"
	"strings"

	"localitybay/internal/apiclient"
	"localitybay/internal/domain"
)

// UserService expone perfiles y búsqueda de usuarios. Los intereses del
// filtro se envían repitiendo la clave.
type UserService struct {
	client *apiclient.Client
}

func NewUserService(client *apiclient.Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.User{}, wrap("fetch user", err)
	}
	env, err := apiclient.Get[domain.User](ctx, s.client, "users/"+escaped)
	if err != nil {
		return domain.User{}, wrap("fetch user", err)
	}
	return env.Data, nil
}

func (s *UserService) Search(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	q := apiclient.NewQuery().
		Set("search", filter.Search).
		Set("city", filter.City).
		AddEach("interests", filter.Interests).
		SetInt("page", filter.Page).
		SetInt("limit", filter.Limit)

	env, err := apiclient.Get[[]domain.User](ctx, s.client, q.Path("users"), apiclient.WithAuth())
	if err != nil {
		return nil, wrap("fetch users", err)
	}
	return env.Data, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, input domain.UpdateProfileInput) (domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	env, err := apiclient.Put[domain.User](ctx, s.client, "users/profile", input, apiclient.WithAuth())
	if err != nil {
		return domain.User{}, wrap("update profile", err)
	}
	return env.Data, nil
}

// UploadAvatar envía la imagen como multipart en el campo "avatar".
func (s *UserService) UploadAvatar(ctx context.Context, filename string, content io.Reader) (domain.User, error) {
	if strings.TrimSpace(filename) == "" || content == nil {
		return domain.User{}, wrap("upload avatar", ErrInvalidInput)
	}
	form := apiclient.NewForm().File("avatar", filename, content)
	env, err := apiclient.Post[domain.User](ctx, s.client, "users/avatar", form, apiclient.WithAuth())
	if err != nil {
		return domain.User{}, wrap("upload avatar", err)
	}
	return env.Data, nil
}

func (s *UserService) Follow(ctx context.Context, id string) error {
	escaped, err := pathID(id)
	if err != nil {
		return wrap("follow user", err)
	}
	_, err = apiclient.Post[any](ctx, s.client, "users/"+escaped+"/follow", nil, apiclient.WithAuth())
	return wrap("follow user", err)
}

func (s *UserService) Unfollow(ctx context.Context, id string) error {
	escaped, err := pathID(id)
	if err != nil {
		return wrap("unfollow user", err)
	}
	_, err = apiclient.Delete[any](ctx, s.client, "users/"+escaped+"/follow", apiclient.WithAuth())
	return wrap("unfollow user", err)
}
