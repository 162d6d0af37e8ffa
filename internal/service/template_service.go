package service

import (
	"context"

	"localitybay/internal/apiclient"
	"localitybay/internal/domain"
)

// TemplateService gestiona las plantillas del panel de administración.
// Todas las llamadas requieren sesión.
type TemplateService struct {
	client *apiclient.Client
}

func NewTemplateService(client *apiclient.Client) *TemplateService {
	return &TemplateService{client: client}
}

func (s *TemplateService) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.Template, error) {
	q := apiclient.NewQuery().
		Set("search", filter.Search).
		Set("type", filter.Type).
		SetJoined("categories", filter.Categories).
		SetBool("is_active", filter.Active).
		SetInt("page", filter.Page).
		SetInt("limit", filter.Limit)

	env, err := apiclient.Get[[]domain.Template](ctx, s.client, q.Path("templates"), apiclient.WithAuth())
	if err != nil {
		return nil, wrap("fetch templates", err)
	}
	return env.Data, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (domain.Template, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Template{}, wrap("fetch template", err)
	}
	env, err := apiclient.Get[domain.Template](ctx, s.client, "templates/"+escaped, apiclient.WithAuth())
	if err != nil {
		return domain.Template{}, wrap("fetch template", err)
	}
	return env.Data, nil
}

func (s *TemplateService) Create(ctx context.Context, input domain.TemplateInput) (domain.Template, error) {
	if input.Name == "" || input.Content == "" {
		return domain.Template{}, wrap("create template", ErrInvalidInput)
	}
	env, err := apiclient.Post[domain.Template](ctx, s.client, "templates", input, apiclient.WithAuth())
	if err != nil {
		return domain.Template{}, wrap("create template", err)
	}
	return env.Data, nil
}

// Update envía un PATCH con los campos de la plantilla.
func (s *TemplateService) Update(ctx context.Context, id string, input domain.TemplateInput) (domain.Template, error) {
	escaped, err := pathID(id)
	if err != nil {
		return domain.Template{}, wrap("update template", err)
	}
	env, err := apiclient.Patch[domain.Template](ctx, s.client, "templates/"+escaped, input, apiclient.WithAuth())
	if err != nil {
		return domain.Template{}, wrap("update template", err)
	}
	return env.Data, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	escaped, err := pathID(id)
	if err != nil {
		return wrap("delete template", err)
	}
	_, err = apiclient.Delete[any](ctx, s.client, "templates/"+escaped, apiclient.WithAuth())
	return wrap("delete template", err)
}
