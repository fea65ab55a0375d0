package services

import (
	"errors"
	"fmt"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"
	"pos-backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleCashier:
		return true
	}
	return false
}

type CreateUserReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (s *UserService) Create(req *CreateUserReq, actorID *uint) (*entity.User, error) {
	if !validRole(req.Role) {
		return nil, apperr.Validationf("invalid role %q", req.Role)
	}
	count, err := s.Users.CountByUsername(req.Username)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if count > 0 {
		return nil, apperr.Validation("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.Users.Create(&user); err != nil {
		return nil, apperr.Storage(err)
	}
	if actorID != nil {
		_ = s.Users.LogActivity(*actorID, "create_user", "Created user: "+req.Username)
	}
	return &user, nil
}

type UpdateUserReq struct {
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

func (s *UserService) Update(id uint, req *UpdateUserReq, actorID *uint) error {
	if _, err := s.Users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("user %d", id)
		}
		return apperr.Storage(err)
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return apperr.Validationf("invalid role %q", *req.Role)
		}
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
	}
	if len(fields) == 0 {
		return apperr.Validation("no fields to update")
	}

	if err := s.Users.Updates(id, fields); err != nil {
		return apperr.Storage(err)
	}
	if actorID != nil {
		_ = s.Users.LogActivity(*actorID, "update_user", fmt.Sprintf("Updated user ID: %d", id))
	}
	return nil
}

func (s *UserService) Delete(id uint, actorID *uint) error {
	if actorID != nil && *actorID == id {
		return apperr.Validation("cannot delete your own account")
	}
	if _, err := s.Users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("user %d", id)
		}
		return apperr.Storage(err)
	}
	if err := s.Users.Delete(id); err != nil {
		return apperr.Storage(err)
	}
	if actorID != nil {
		_ = s.Users.LogActivity(*actorID, "delete_user", fmt.Sprintf("Deleted user ID: %d", id))
	}
	return nil
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Users.List()
}
