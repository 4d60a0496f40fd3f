package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/user/dto"
	"github.com/oretina/assettrack/internal/modules/user/repository"
	"github.com/oretina/assettrack/pkg/apperror"
	"github.com/oretina/assettrack/pkg/credential"
	commonDto "github.com/oretina/assettrack/pkg/dto"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	List(ctx context.Context, q commonDto.PaginationQuery) (*dto.PaginatedUserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*entity.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest, actorRole string) (*entity.User, error)
	ChangePassword(ctx context.Context, targetID uuid.UUID, actorID, actorRole, oldPassword, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewUserService(repo repository.UserRepository, secret string, tokenTTL time.Duration) UserService {
	return &userService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.createUser(ctx, req.Name, req.Email, req.Password, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return s.buildAuthResponse(user)
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrUnauthorized, "invalid credentials")
		}
		return nil, err
	}

	if !credential.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.New(apperror.ErrUnauthorized, "invalid credentials")
	}

	return s.buildAuthResponse(user)
}

func (s *userService) List(ctx context.Context, q commonDto.PaginationQuery) (*dto.PaginatedUserResponse, error) {
	page, limit := q.Clamp()
	offset := (page - 1) * limit

	users, total, err := s.repo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []*entity.User{}
	}

	return &dto.PaginatedUserResponse{
		Data:       users,
		Pagination: commonDto.NewPagination(page, limit, total),
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*entity.User, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	return s.createUser(ctx, req.Name, req.Email, req.Password, role)
}

func (s *userService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*entity.User, error) {
	if !entity.IsValidRole(role) {
		return nil, apperror.New(apperror.ErrInvalidInput, "unknown role")
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest, actorRole string) (*entity.User, error) {
	// Setting a password through the general edit path is an admin action;
	// everyone else goes through ChangePassword with old-password proof.
	if req.Password != nil && actorRole != entity.RoleAdmin {
		return nil, apperror.New(apperror.ErrForbidden, "only administrators can set passwords")
	}
	// Role changes are admin-only on every path, not just /users/:id/role.
	if req.Role != nil && actorRole != entity.RoleAdmin {
		return nil, apperror.New(apperror.ErrForbidden, "only administrators can change roles")
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil {
		hash, err := credential.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.ErrConflict, "email already in use")
		}
		return nil, err
	}

	return user, nil
}

// ChangePassword lets a user rotate their own password, or an admin rotate
// anyone's. The current password must verify in every case, admins included.
func (s *userService) ChangePassword(ctx context.Context, targetID uuid.UUID, actorID, actorRole, oldPassword, newPassword string) error {
	if actorID != targetID.String() && actorRole != entity.RoleAdmin {
		return apperror.New(apperror.ErrForbidden, "you can only change your own password")
	}

	user, err := s.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if !credential.VerifyPassword(oldPassword, user.PasswordHash) {
		return apperror.New(apperror.ErrUnauthorized, "old password is incorrect")
	}

	hash, err := credential.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.repo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) createUser(ctx context.Context, name, email, password, role string) (*entity.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.New(apperror.ErrConflict, "email already registered")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := credential.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent-create race; the unique index has the truth.
			return nil, apperror.New(apperror.ErrConflict, "email already registered")
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := credential.IssueToken(s.secret, credential.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}
