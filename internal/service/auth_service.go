package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"localitybay/internal/apiclient"
	"localitybay/internal/domain"
	"localitybay/internal/session"
)

// AuthService maneja login, registro y cierre de sesión.
type AuthService struct {
	logger  *zap.Logger
	client  *apiclient.Client
	session *session.Session
}

func NewAuthService(logger *zap.Logger, client *apiclient.Client, sess *session.Session) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		logger:  logger,
		client:  client,
		session: sess,
	}
}

// Login autentica contra el backend y guarda el token devuelto.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (domain.AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || strings.TrimSpace(input.Password) == "" {
		return domain.AuthResult{}, wrap("login", ErrInvalidCredentials)
	}
	env, err := apiclient.Post[domain.AuthResult](ctx, s.client, "auth/login", input)
	if err != nil {
		return domain.AuthResult{}, wrap("login", err)
	}
	if err := s.authenticate(ctx, env); err != nil {
		return domain.AuthResult{}, wrap("login", err)
	}
	return env.Data, nil
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || strings.TrimSpace(input.Password) == "" {
		return domain.AuthResult{}, wrap("register", ErrInvalidCredentials)
	}
	env, err := apiclient.Post[domain.AuthResult](ctx, s.client, "auth/register", input)
	if err != nil {
		return domain.AuthResult{}, wrap("register", err)
	}
	if err := s.authenticate(ctx, env); err != nil {
		return domain.AuthResult{}, wrap("register", err)
	}
	return env.Data, nil
}

// authenticate guarda el token; si el backend respondió status:false sin token
// se devuelve su mensaje.
func (s *AuthService) authenticate(ctx context.Context, env domain.Envelope[domain.AuthResult]) error {
	if !env.Status && strings.TrimSpace(env.Data.Token) == "" && strings.TrimSpace(env.Message) != "" {
		return errors.New(env.Message)
	}
	return s.session.Authenticate(ctx, env.Data.Token)
}

// Logout avisa al backend si hay sesión y siempre limpia la sesión local.
// Un 401 aquí no dispara la expiración: la sesión se cierra de todos modos.
func (s *AuthService) Logout(ctx context.Context) error {
	if token := s.session.Token(); token != "" {
		_, err := apiclient.Post[any](ctx, s.client, "auth/logout", nil,
			apiclient.WithHeader("Authorization", "Bearer "+token))
		if err != nil {
			s.logger.Warn("remote logout failed", zap.Error(err))
		}
	}
	return wrap("logout", s.session.Logout(ctx))
}

func (s *AuthService) Me(ctx context.Context) (domain.User, error) {
	env, err := apiclient.Get[domain.User](ctx, s.client, "auth/me", apiclient.WithAuth())
	if err != nil {
		return domain.User{}, wrap("fetch current user", err)
	}
	return env.Data, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, input domain.ChangePasswordInput) error {
	if strings.TrimSpace(input.CurrentPassword) == "" || strings.TrimSpace(input.NewPassword) == "" {
		return wrap("change password", ErrInvalidInput)
	}
	_, err := apiclient.Put[any](ctx, s.client, "auth/password", input, apiclient.WithAuth())
	return wrap("change password", err)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return wrap("request password reset", ErrInvalidInput)
	}
	_, err := apiclient.Post[any](ctx, s.client, "auth/forgot-password", map[string]string{"email": email})
	return wrap("request password reset", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
