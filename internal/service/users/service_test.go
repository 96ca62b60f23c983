package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	userRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	byID      map[int64]*domain.User
	count     int64
	createErr error

	created     []*domain.User
	roleUpdates map[int64]domain.UserRole
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:     map[string]*domain.User{},
		byID:        map[int64]*domain.User{},
		roleUpdates: map[int64]domain.UserRole{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *u
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	result := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.UserRole) error {
	if _, ok := f.byID[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	f.roleUpdates[id] = role
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, _ string) error {
	if _, ok := f.byID[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return f.count, nil
}

type fakeTokens struct{}

func (f *fakeTokens) Issue(_ int64, _, _ string) (string, error) {
	return "test-token", nil
}

type fakeAudit struct {
	records int
}

func (f *fakeAudit) Record(_ context.Context, _ int64, _ domain.AuditAction, _, _, _ string) {
	f.records++
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func admin(t *testing.T) *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleAdmin, PasswordHash: hash(t, "adminpass123")}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["op@condo.local"] = &domain.User{
		ID:           2,
		Email:        "op@condo.local",
		Role:         domain.RoleOperator,
		PasswordHash: hash(t, "operator123"),
	}
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "  OP@condo.local ",
		Password: "operator123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, int64(2), resp.User.ID)
}

// Несуществующий email и неверный пароль дают одинаковую ошибку
func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["op@condo.local"] = &domain.User{
		ID:           2,
		Email:        "op@condo.local",
		PasswordHash: hash(t, "operator123"),
	}
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "unknown@condo.local",
		Password: "operator123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "op@condo.local",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreate_OperatorDenied(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeTokens{}, &fakeAudit{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Email:    "new@condo.local",
		Name:     "Новый",
		Password: "password123",
	}, &domain.User{ID: 2, Role: domain.RoleOperator})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_DefaultRoleOperator(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Email:    "New@Condo.Local",
		Name:     "Новый оператор",
		Password: "password123",
	}, admin(t))

	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleOperator), resp.Role)
	// Email нормализуется к нижнему регистру
	assert.Equal(t, "new@condo.local", resp.Email)
}

func TestCreate_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = userRepo.ErrEmailTaken
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Email:    "dup@condo.local",
		Name:     "Дубль",
		Password: "password123",
	}, admin(t))

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateRole_SelfDemotion(t *testing.T) {
	repo := newFakeUserRepo()
	actor := admin(t)
	repo.byID[actor.ID] = actor
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	err := svc.UpdateRole(context.Background(), actor.ID, &models.UpdateRoleRequest{Role: "operator"}, actor)

	assert.ErrorIs(t, err, ErrSelfDemotion)
	assert.Empty(t, repo.roleUpdates)
}

func TestUpdateRole_Success(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byID[5] = &domain.User{ID: 5, Role: domain.RoleOperator}
	audit := &fakeAudit{}
	svc := NewService(repo, &fakeTokens{}, audit, noopLogger{})

	err := svc.UpdateRole(context.Background(), 5, &models.UpdateRoleRequest{Role: "admin"}, admin(t))

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, repo.roleUpdates[5])
	assert.Equal(t, 1, audit.records)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	actor := admin(t)
	repo.byID[actor.ID] = actor
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	err := svc.ChangePassword(context.Background(), &models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	}, actor)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokens{}, &fakeAudit{}, noopLogger{})

	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))
	require.Len(t, repo.created, 1)

	created := repo.created[0]
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.True(t, created.MustChangePassword)

	// На непустой таблице ничего не создается
	repo.count = 1
	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))
	assert.Len(t, repo.created, 1)
}
