package service

import (
	"bytes"
	"context"
	"strconv"

	"localitybay/internal/apiclient"
	"localitybay/internal/domain"
)

// AdvertisementService expone el marketplace de anuncios. Los tags del
// filtro se envían repitiendo la clave.
type AdvertisementService struct {
	client *apiclient.Client
}

func NewAdvertisementService(client *apiclient.Client) *AdvertisementService {
	return &AdvertisementService{client: client}
}

func (s *AdvertisementService) List(ctx context.Context, filter domain.AdvertisementFilter) ([]domain.Advertisement, error) {
	q := apiclient.NewQuery().
		Set("search", filter.Search).
		Set("category", filter.Category).
		Set("city", filter.City).
		AddEach("tags", filter.Tags).
		SetFloat("min_price", filter.MinPrice).
		SetFloat("max_price", filter.MaxPrice).
		SetInt("page", filter.Page).
		SetInt("limit", filter.Limit)

	env, err := apiclient.Get[[]domain.Advertisement](ctx, s.client, q.Path("advertisements"))
	if err != nil {
		return nil, wrap("fetch advertisements", err)
	}
	return env.Data, nil
}

func (s *AdvertisementService) Get(ctx context.Context, id string) (domain.Advertisement, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Advertisement{}, wrap("fetch advertisement", err)
	}
	env, err := apiclient.Get[domain.Advertisement](ctx, s.client, "advertisements/"+escaped)
	if err != nil {
		return domain.Advertisement{}, wrap("fetch advertisement", err)
	}
	return env.Data, nil
}

func (s *AdvertisementService) Mine(ctx context.Context) ([]domain.Advertisement, error) {
	env, err := apiclient.Get[[]domain.Advertisement](ctx, s.client, "advertisements/my", apiclient.WithAuth())
	if err != nil {
		return nil, wrap("fetch your advertisements", err)
	}
	return env.Data, nil
}

// Create usa multipart cuando hay imágenes y JSON en caso contrario.
func (s *AdvertisementService) Create(ctx context.Context, input domain.AdvertisementInput, images []domain.AdvertisementImage) (domain.Advertisement, error) {
	if input.Title == "" {
		return domain.Advertisement{}, wrap("create advertisement", ErrInvalidInput)
	}
	var body any = input
	if len(images) > 0 {
		form := apiclient.NewForm().
			Field("title", input.Title).
			Field("description", input.Description).
			Field("category", input.Category).
			Field("price", strconv.FormatFloat(input.Price, 'f', -1, 64)).
			Field("city", input.City)
		for _, tag := range input.Tags {
			form.Field("tags", tag)
		}
		for _, img := range images {
			form.File("images", img.Filename, bytes.NewReader(img.Content))
		}
		body = form
	}
	env, err := apiclient.Post[domain.Advertisement](ctx, s.client, "advertisements", body, apiclient.WithAuth())
	if err != nil {
		return domain.Advertisement{}, wrap("create advertisement", err)
	}
	return env.Data, nil
}

func (s *AdvertisementService) Update(ctx context.Context, id string, input domain.AdvertisementInput) (domain.Advertisement, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Advertisement{}, wrap("update advertisement", err)
	}
	env, err := apiclient.Put[domain.Advertisement](ctx, s.client, "advertisements/"+escaped, input, apiclient.WithAuth())
	if err != nil {
		return domain.Advertisement{}, wrap("update advertisement", err)
	}
	return env.Data, nil
}

func (s *AdvertisementService) Delete(ctx context.Context, id string) error {
	escaped, err := pathID(id)
	if err != nil {
		return wrap("delete advertisement", err)
	}
	_, err = apiclient.Delete[any](ctx, s.client, "advertisements/"+escaped, apiclient.WithAuth())
	return wrap("delete advertisement", err)
}
