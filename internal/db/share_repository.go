package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type ShareRepository struct {
	database *gorm.DB
}

func NewShareRepository(database *gorm.DB) *ShareRepository {
	return &ShareRepository{database: database}
}

// Create persists a new grant. The partial unique index over
// (sender, receiver, scope) of live shares surfaces duplicates as
// models.ErrConflict.
func (repo *ShareRepository) Create(share *models.Share) error {
	if err := repo.database.Create(share).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: an identical share already exists", models.ErrConflict)
		}
		return err
	}
	return nil
}

// FindActiveByID loads a live share; revoked shares read as missing.
func (repo *ShareRepository) FindActiveByID(shareID uuid.UUID) (models.Share, bool, error) {
	var share models.Share
	result := repo.database.Where("id = ? AND deleted = ?", shareID, false).Limit(1).Find(&share)
	if result.Error != nil {
		return models.Share{}, false, result.Error
	}
	return share, result.RowsAffected > 0, nil
}

func (repo *ShareRepository) ListBySender(senderID uint) ([]models.Share, error) {
	shares := make([]models.Share, 0)
	if err := repo.database.
		Where("sender_id = ? AND deleted = ?", senderID, false).
		Order("created_at ASC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (repo *ShareRepository) ListByReceiver(receiverID uint) ([]models.Share, error) {
	shares := make([]models.Share, 0)
	if err := repo.database.
		Where("receiver_id = ? AND deleted = ?", receiverID, false).
		Order("created_at ASC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

// SoftDelete marks the share revoked. The row stays for audit history.
func (repo *ShareRepository) SoftDelete(shareID uuid.UUID) error {
	return repo.database.Model(&models.Share{}).Where("id = ?", shareID).Update("deleted", true).Error
}
