package repository

import (
	"time"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Updates(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("last_login", now).Error
}

// LogActivity appends to the audit trail; failures are the caller's call.
func (r *UserRepository) LogActivity(userID uint, action, details string) error {
	return r.DB.Create(&entity.UserActivityLog{UserID: userID, Action: action, Details: details}).Error
}
