package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	var user models.User
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("username = ?", username).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsByID(userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("last_login", at).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}
