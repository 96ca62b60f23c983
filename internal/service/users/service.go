package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	userRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CondoService/internal/service/users/models"
)

const auditCollection = "users"

// Учетные данные первого администратора. Создаются только на пустой таблице,
// флаг must_change_password заставляет сменить пароль при первом входе.
const (
	bootstrapAdminEmail    = "admin@condo.local"
	bootstrapAdminName     = "Администратор"
	bootstrapAdminPassword = "admin12345"
)

// Service сервис учетных записей: аутентификация и управление пользователями
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	audit    AuditRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
		logger:   logger,
	}
}

// Login проверяет учетные данные и выпускает токен сессии.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role), user.Email)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - token error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%d (%s) logged in", user.ID, user.Role)
	return &models.LoginResponse{Token: token, User: models.FromDomainUser(user)}, nil
}

// Create создает учетную запись. Доступно только администратору.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest, actor *domain.User) (*models.UserResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("Create: access denied for user=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash error: %v", ErrInternal, err)
	}

	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleOperator
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already taken", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actor.ID, domain.ActionCreate, auditCollection, strconv.FormatInt(created.ID, 10),
		fmt.Sprintf("Создан пользователь %s (%s)", created.Name, created.Role))

	s.logger.Info("Create: user id=%d created by admin=%d", created.ID, actor.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List получает всех пользователей. Доступно только администратору.
func (s *Service) List(ctx context.Context, actor *domain.User) (*models.UserListResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("List: access denied for user=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// UpdateRole меняет роль пользователя. Доступно только администратору,
// снять роль администратора с самого себя нельзя.
func (s *Service) UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest, actor *domain.User) error {
	if !actor.IsAdmin() {
		s.logger.Warn("UpdateRole: access denied for user=%d", actor.ID)
		return ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("UpdateRole: validation failed for user id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	role := domain.UserRole(req.Role)
	if id == actor.ID && role != domain.RoleAdmin {
		s.logger.Warn("UpdateRole: admin=%d attempted self-demotion", actor.ID)
		return ErrSelfDemotion
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateRole: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, actor.ID, domain.ActionUpdate, auditCollection, strconv.FormatInt(id, 10),
		fmt.Sprintf("Изменена роль пользователя id=%d на %s", id, role))

	s.logger.Info("UpdateRole: user id=%d role=%s updated by admin=%d", id, role, actor.ID)
	return nil
}

// ChangePassword меняет пароль текущего пользователя после проверки старого
func (s *Service) ChangePassword(ctx context.Context, req *models.ChangePasswordRequest, actor *domain.User) error {
	if err := req.Validate(); err != nil {
		s.logger.Warn("ChangePassword: validation failed for user=%d: %v", actor.ID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("ChangePassword: wrong current password for user=%d", actor.ID)
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: ChangePassword - hash error: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, actor.ID, string(hash)); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ChangePassword: repository error for user=%d: %v", actor.ID, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: user=%d changed password", actor.ID)
	return nil
}

// EnsureBootstrapAdmin создает первого администратора на пустой таблице
// пользователей. Вызывается при старте сервиса.
func (s *Service) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureBootstrapAdmin - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureBootstrapAdmin - hash error: %v", ErrInternal, err)
	}

	admin := &domain.User{
		Email:              bootstrapAdminEmail,
		Name:               bootstrapAdminName,
		PasswordHash:       string(hash),
		Role:               domain.RoleAdmin,
		MustChangePassword: true,
	}

	created, err := s.userRepo.Create(ctx, admin)
	if err != nil {
		// Параллельный инстанс мог успеть первым
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("%w: EnsureBootstrapAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("EnsureBootstrapAdmin: created bootstrap admin id=%d (%s), password change required", created.ID, created.Email)
	return nil
}
