package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/observability"
)

type ShareStore interface {
	Create(share *models.Share) error
	FindActiveByID(shareID uuid.UUID) (models.Share, bool, error)
	ListBySender(senderID uint) ([]models.Share, error)
	ListByReceiver(receiverID uint) ([]models.Share, error)
	SoftDelete(shareID uuid.UUID) error
}

type ShareUserReader interface {
	ExistsByID(userID uint) (bool, error)
}

// SharedRecordReaders bundles the per-category windowed reads the filter
// path needs. Both resolve and preview go through the same bundle, so the
// filtering behavior cannot drift between them.
type SharedRecordReaders struct {
	Exercises interface {
		ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Exercise, error)
	}
	Measurements interface {
		ListByUserTypeWindow(userID uint, measurementType models.MeasurementType, start time.Time, end time.Time) ([]models.BodyMeasurement, error)
	}
	Achievements interface {
		ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Achievement, error)
	}
}

// SharedData is the grouped result of resolving a share. Categories absent
// from the scope stay as empty slices, never nil.
type SharedData struct {
	Exercises    []models.Exercise        `json:"exercises"`
	Measurements []models.BodyMeasurement `json:"body_measurements"`
	Achievements []models.Achievement     `json:"achievements"`
}

type ShareService struct {
	shares  ShareStore
	users   ShareUserReader
	records SharedRecordReaders
	clock   func() time.Time
}

func NewShareService(shares ShareStore, users ShareUserReader, records SharedRecordReaders) *ShareService {
	return &ShareService{
		shares:  shares,
		users:   users,
		records: records,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateShare validates scope and window, checks the receiver, and persists
// the grant. An identical live (sender, receiver, scope) grant surfaces as
// models.ErrConflict from the store's unique index.
func (service *ShareService) CreateShare(senderID uint, receiverID uint, scopeInput ShareScopeInput, start time.Time, end time.Time) (models.Share, error) {
	scope, err := ParseShareScope(scopeInput)
	if err != nil {
		return models.Share{}, err
	}
	if err := ValidateShareWindow(start, end); err != nil {
		return models.Share{}, err
	}
	if receiverID == senderID {
		return models.Share{}, fmt.Errorf("%w: cannot share with yourself", models.ErrValidation)
	}
	exists, err := service.users.ExistsByID(receiverID)
	if err != nil {
		return models.Share{}, fmt.Errorf("check receiver: %w", err)
	}
	if !exists {
		return models.Share{}, fmt.Errorf("%w: receiver %d does not exist", models.ErrValidation, receiverID)
	}

	share := models.Share{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Scope:      scope,
		StartDate:  start,
		EndDate:    end,
		CreatedAt:  service.clock(),
	}
	if err := service.shares.Create(&share); err != nil {
		return models.Share{}, err
	}
	observability.RecordShareCreated()
	return share, nil
}

// ResolveShare returns the sender's records the share exposes. A missing or
// revoked share is not found; an actor who is neither sender nor receiver is
// rejected. The optional asOf clips the window's end so the share can be
// viewed as it would have resolved at an earlier time.
func (service *ShareService) ResolveShare(shareID uuid.UUID, actorID uint, asOf *time.Time) (SharedData, error) {
	share, found, err := service.shares.FindActiveByID(shareID)
	if err != nil {
		return SharedData{}, fmt.Errorf("load share: %w", err)
	}
	if !found {
		return SharedData{}, fmt.Errorf("%w: share %s", models.ErrNotFound, shareID)
	}
	if actorID != share.SenderID && actorID != share.ReceiverID {
		return SharedData{}, fmt.Errorf("%w: share %s is not shared with you", models.ErrNotAuthorized, shareID)
	}

	end := share.EndDate
	if asOf != nil && asOf.Before(end) {
		end = *asOf
	}
	data, err := service.collectSharedData(share.SenderID, share.Scope, share.StartDate, end)
	if err != nil {
		return SharedData{}, err
	}
	observability.RecordShareResolved()
	return data, nil
}

// GetShare returns the grant itself, without resolving any records. The same
// visibility rule as ResolveShare applies.
func (service *ShareService) GetShare(shareID uuid.UUID, actorID uint) (models.Share, error) {
	share, found, err := service.shares.FindActiveByID(shareID)
	if err != nil {
		return models.Share{}, fmt.Errorf("load share: %w", err)
	}
	if !found {
		return models.Share{}, fmt.Errorf("%w: share %s", models.ErrNotFound, shareID)
	}
	if actorID != share.SenderID && actorID != share.ReceiverID {
		return models.Share{}, fmt.Errorf("%w: share %s is not shared with you", models.ErrNotAuthorized, shareID)
	}
	return share, nil
}

// PreviewShare computes the same filtered view a share with this scope and
// window would resolve to, without persisting anything.
func (service *ShareService) PreviewShare(senderID uint, scopeInput ShareScopeInput, start time.Time, end time.Time) (SharedData, error) {
	scope, err := ParseShareScope(scopeInput)
	if err != nil {
		return SharedData{}, err
	}
	if err := ValidateShareWindow(start, end); err != nil {
		return SharedData{}, err
	}
	return service.collectSharedData(senderID, scope, start, end)
}

// RevokeShare soft-deletes the grant. Only the sender may revoke; the
// receiver can stop looking but cannot withdraw the grant.
func (service *ShareService) RevokeShare(shareID uuid.UUID, actorID uint) error {
	share, found, err := service.shares.FindActiveByID(shareID)
	if err != nil {
		return fmt.Errorf("load share: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: share %s", models.ErrNotFound, shareID)
	}
	if share.SenderID != actorID {
		return fmt.Errorf("%w: only the sender can revoke share %s", models.ErrNotAuthorized, shareID)
	}
	if err := service.shares.SoftDelete(share.ID); err != nil {
		return fmt.Errorf("revoke share: %w", err)
	}
	observability.RecordShareRevoked()
	return nil
}

func (service *ShareService) ListForSender(senderID uint) ([]models.Share, error) {
	return service.shares.ListBySender(senderID)
}

func (service *ShareService) ListForReceiver(receiverID uint) ([]models.Share, error) {
	return service.shares.ListByReceiver(receiverID)
}

// collectSharedData is the single filter path: a function of (scope, window,
// sender) only, independent of any Share row. The window is inclusive on
// both ends.
func (service *ShareService) collectSharedData(senderID uint, scope models.ShareScope, start time.Time, end time.Time) (SharedData, error) {
	data := SharedData{
		Exercises:    make([]models.Exercise, 0),
		Measurements: make([]models.BodyMeasurement, 0),
		Achievements: make([]models.Achievement, 0),
	}

	for _, exerciseType := range scope.ExerciseTypes {
		exercises, err := service.records.Exercises.ListByUserTypeWindow(senderID, exerciseType, start, end)
		if err != nil {
			return SharedData{}, fmt.Errorf("load shared exercises: %w", err)
		}
		data.Exercises = append(data.Exercises, exercises...)
	}
	for _, measurementType := range scope.MeasurementTypes {
		measurements, err := service.records.Measurements.ListByUserTypeWindow(senderID, measurementType, start, end)
		if err != nil {
			return SharedData{}, fmt.Errorf("load shared measurements: %w", err)
		}
		data.Measurements = append(data.Measurements, measurements...)
	}
	for _, exerciseType := range scope.Achievements {
		achievements, err := service.records.Achievements.ListByUserTypeWindow(senderID, exerciseType, start, end)
		if err != nil {
			return SharedData{}, fmt.Errorf("load shared achievements: %w", err)
		}
		data.Achievements = append(data.Achievements, achievements...)
	}
	return data, nil
}
