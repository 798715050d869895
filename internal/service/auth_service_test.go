package service

import (
	"context"
	"testing"

	"tindahan/internal/config"
	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = uuid.New()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.users[id]; ok {
		u.Active = false
	}
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	if u, ok := r.users[id]; ok {
		u.Active = true
	}
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStubUserRepo(), testAuthConfig())

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ana", Name: "Ana", Password: "supersecret", Role: "staff",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "ana", resp.User.Username)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStubUserRepo(), testAuthConfig())

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ana", Name: "Ana", Password: "supersecret", Role: "staff",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "nope"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "supersecret"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStubUserRepo(), testAuthConfig())

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ana", Name: "Ana", Password: "supersecret", Role: "admin",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "supersecret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "ana", refreshed.User.Username)

	_, err = svc.Refresh(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestAuthServiceCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStubUserRepo(), testAuthConfig())

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ana", Name: "Ana", Password: "supersecret", Role: "staff",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ana", Name: "Ana Clone", Password: "supersecret", Role: "staff",
	})
	assert.EqualError(t, err, "username already taken")
}

func TestAuthServiceDeactivateBlocksLogin(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())

	created, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "ben", Name: "Ben", Password: "supersecret", Role: "staff",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateUser(ctx, uuid.MustParse(created.ID)))

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ben", Password: "supersecret"})
	assert.Error(t, err)

	require.NoError(t, svc.ReactivateUser(ctx, uuid.MustParse(created.ID)))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ben", Password: "supersecret"})
	assert.NoError(t, err)
}
