package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fitledger/fitledger/internal/models"
)

type stubShareStore struct {
	shares map[uuid.UUID]*models.Share
}

func newStubShareStore() *stubShareStore {
	return &stubShareStore{shares: make(map[uuid.UUID]*models.Share)}
}

func shareIdentity(share *models.Share) string {
	scopeJSON, _ := json.Marshal(share.Scope)
	return fmt.Sprintf("%d/%d/%s", share.SenderID, share.ReceiverID, scopeJSON)
}

func (store *stubShareStore) Create(share *models.Share) error {
	identity := shareIdentity(share)
	for _, existing := range store.shares {
		if !existing.Deleted && shareIdentity(existing) == identity {
			return fmt.Errorf("%w: an identical share already exists", models.ErrConflict)
		}
	}
	share.ID = uuid.New()
	copied := *share
	store.shares[share.ID] = &copied
	return nil
}

func (store *stubShareStore) FindActiveByID(shareID uuid.UUID) (models.Share, bool, error) {
	share, ok := store.shares[shareID]
	if !ok || share.Deleted {
		return models.Share{}, false, nil
	}
	return *share, true, nil
}

func (store *stubShareStore) ListBySender(senderID uint) ([]models.Share, error) {
	var out []models.Share
	for _, share := range store.shares {
		if share.SenderID == senderID && !share.Deleted {
			out = append(out, *share)
		}
	}
	return out, nil
}

func (store *stubShareStore) ListByReceiver(receiverID uint) ([]models.Share, error) {
	var out []models.Share
	for _, share := range store.shares {
		if share.ReceiverID == receiverID && !share.Deleted {
			out = append(out, *share)
		}
	}
	return out, nil
}

func (store *stubShareStore) SoftDelete(shareID uuid.UUID) error {
	share, ok := store.shares[shareID]
	if !ok {
		return errors.New("share missing")
	}
	share.Deleted = true
	return nil
}

type stubShareUsers struct {
	known map[uint]bool
}

func (users *stubShareUsers) ExistsByID(userID uint) (bool, error) {
	return users.known[userID], nil
}

type windowedRecords struct {
	exercises    []models.Exercise
	measurements []models.BodyMeasurement
	achievements []models.Achievement
}

func inWindow(at time.Time, start time.Time, end time.Time) bool {
	return !at.Before(start) && !at.After(end)
}

func (records *windowedRecords) readers() SharedRecordReaders {
	return SharedRecordReaders{
		Exercises:    exerciseWindowReader{records},
		Measurements: measurementWindowReader{records},
		Achievements: achievementWindowReader{records},
	}
}

type exerciseWindowReader struct{ records *windowedRecords }

func (reader exerciseWindowReader) ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Exercise, error) {
	var out []models.Exercise
	for _, exercise := range reader.records.exercises {
		if exercise.UserID == userID && exercise.Type == exerciseType && inWindow(exercise.CreatedAt, start, end) {
			out = append(out, exercise)
		}
	}
	return out, nil
}

type measurementWindowReader struct{ records *windowedRecords }

func (reader measurementWindowReader) ListByUserTypeWindow(userID uint, measurementType models.MeasurementType, start time.Time, end time.Time) ([]models.BodyMeasurement, error) {
	var out []models.BodyMeasurement
	for _, measurement := range reader.records.measurements {
		if measurement.UserID == userID && measurement.Type == measurementType && inWindow(measurement.CreatedAt, start, end) {
			out = append(out, measurement)
		}
	}
	return out, nil
}

type achievementWindowReader struct{ records *windowedRecords }

func (reader achievementWindowReader) ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, achievement := range reader.records.achievements {
		if achievement.UserID == userID && achievement.ExerciseType == exerciseType && inWindow(achievement.CreatedAt, start, end) {
			out = append(out, achievement)
		}
	}
	return out, nil
}

var (
	shareStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	shareEnd   = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
)

func day(month time.Month, dayOfMonth int) time.Time {
	return time.Date(2026, month, dayOfMonth, 12, 0, 0, 0, time.UTC)
}

func newShareFixture() (*ShareService, *stubShareStore, *windowedRecords) {
	store := newStubShareStore()
	records := &windowedRecords{}
	users := &stubShareUsers{known: map[uint]bool{1: true, 2: true}}
	return NewShareService(store, users, records.readers()), store, records
}

func TestResolveShareFiltersByScope(t *testing.T) {
	service, _, records := newShareFixture()
	records.exercises = []models.Exercise{
		{UserID: 1, Type: models.ExerciseCycling, Metrics: models.Metrics{"distance": 15000, "duration": 45}, CreatedAt: day(2, 1)},
		{UserID: 1, Type: models.ExerciseCycling, Metrics: models.Metrics{"distance": 20000, "duration": 60}, CreatedAt: day(2, 2)},
		{UserID: 1, Type: models.ExerciseCycling, Metrics: models.Metrics{"distance": 5000, "duration": 20}, CreatedAt: day(2, 3)},
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 5000, "duration": 30}, CreatedAt: day(2, 4)},
	}
	records.measurements = []models.BodyMeasurement{
		{UserID: 1, Type: models.MeasurementWeight, Value: 80, Unit: "kg", CreatedAt: day(2, 5)},
	}

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"cycling"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	data, err := service.ResolveShare(share.ID, 2, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(data.Exercises) != 3 {
		t.Fatalf("expected 3 cycling records, got %d", len(data.Exercises))
	}
	for _, exercise := range data.Exercises {
		if exercise.Type != models.ExerciseCycling {
			t.Fatalf("out-of-scope record leaked: %+v", exercise)
		}
	}
	if len(data.Measurements) != 0 || len(data.Achievements) != 0 {
		t.Fatalf("unscoped categories must be empty, got %+v", data)
	}
	if data.Measurements == nil || data.Achievements == nil {
		t.Fatalf("unscoped categories must be empty slices, not nil")
	}
}

func TestResolveShareFiltersByWindow(t *testing.T) {
	service, _, records := newShareFixture()
	records.exercises = []models.Exercise{
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 1000, "duration": 10}, CreatedAt: day(1, 10)},
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 2000, "duration": 15}, CreatedAt: day(6, 10)},
	}

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"running"}},
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	data, err := service.ResolveShare(share.ID, 2, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(data.Exercises) != 1 || data.Exercises[0].Metrics["distance"] != 2000 {
		t.Fatalf("only the in-window record should resolve, got %+v", data.Exercises)
	}
}

func TestResolveShareAsOfClipsWindowEnd(t *testing.T) {
	service, _, records := newShareFixture()
	records.exercises = []models.Exercise{
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 1000, "duration": 10}, CreatedAt: day(3, 1)},
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 2000, "duration": 15}, CreatedAt: day(9, 1)},
	}

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	asOf := day(6, 1)
	data, err := service.ResolveShare(share.ID, 2, &asOf)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(data.Exercises) != 1 || data.Exercises[0].Metrics["distance"] != 1000 {
		t.Fatalf("asOf should clip the window end, got %+v", data.Exercises)
	}

	// An asOf past the window end does not extend it.
	late := day(12, 30).AddDate(1, 0, 0)
	data, err = service.ResolveShare(share.ID, 2, &late)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(data.Exercises) != 2 {
		t.Fatalf("late asOf keeps the original window, got %d records", len(data.Exercises))
	}
}

func TestResolveShareAuthorization(t *testing.T) {
	service, _, records := newShareFixture()
	records.exercises = []models.Exercise{
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 1000, "duration": 10}, CreatedAt: day(3, 1)},
	}

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	if _, err := service.ResolveShare(share.ID, 1, nil); err != nil {
		t.Fatalf("sender must be able to resolve their own share: %v", err)
	}
	if _, err := service.ResolveShare(share.ID, 2, nil); err != nil {
		t.Fatalf("receiver must be able to resolve: %v", err)
	}
	if _, err := service.ResolveShare(share.ID, 3, nil); !errors.Is(err, models.ErrNotAuthorized) {
		t.Fatalf("third party: expected not authorized, got %v", err)
	}
	if _, err := service.ResolveShare(uuid.New(), 2, nil); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("unknown share: expected not found, got %v", err)
	}
}

func TestCreateShareValidation(t *testing.T) {
	service, _, _ := newShareFixture()
	scope := ShareScopeInput{ExerciseTypes: []string{"running"}}

	if _, err := service.CreateShare(1, 1, scope, shareStart, shareEnd); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("self-share: expected validation error, got %v", err)
	}
	if _, err := service.CreateShare(1, 99, scope, shareStart, shareEnd); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("unknown receiver: expected validation error, got %v", err)
	}
	if _, err := service.CreateShare(1, 2, ShareScopeInput{}, shareStart, shareEnd); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("empty scope: expected validation error, got %v", err)
	}
}

func TestDuplicateLiveShareConflictsUntilRevoked(t *testing.T) {
	service, _, _ := newShareFixture()
	scope := ShareScopeInput{ExerciseTypes: []string{"running"}}

	first, err := service.CreateShare(1, 2, scope, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := service.CreateShare(1, 2, scope, shareStart, shareEnd); !errors.Is(err, models.ErrConflict) {
		t.Fatalf("duplicate live share: expected conflict, got %v", err)
	}
	// Same sender and receiver with a different scope is a different grant.
	if _, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"yoga"}}, shareStart, shareEnd); err != nil {
		t.Fatalf("different scope should not conflict: %v", err)
	}

	if err := service.RevokeShare(first.ID, 1); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	// Revocation frees the identity for a fresh grant.
	if _, err := service.CreateShare(1, 2, scope, shareStart, shareEnd); err != nil {
		t.Fatalf("re-grant after revoke failed: %v", err)
	}
}

func TestRevokedShareIsGone(t *testing.T) {
	service, _, _ := newShareFixture()

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}
	if err := service.RevokeShare(share.ID, 1); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, err := service.ResolveShare(share.ID, 2, nil); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("revoked share resolve: expected not found, got %v", err)
	}
	if err := service.RevokeShare(share.ID, 1); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("double revoke: expected not found, got %v", err)
	}
}

func TestOnlySenderCanRevoke(t *testing.T) {
	service, _, _ := newShareFixture()

	share, err := service.CreateShare(1, 2, ShareScopeInput{ExerciseTypes: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	if err := service.RevokeShare(share.ID, 2); !errors.Is(err, models.ErrNotAuthorized) {
		t.Fatalf("receiver revoke: expected not authorized, got %v", err)
	}
	if err := service.RevokeShare(share.ID, 3); !errors.Is(err, models.ErrNotAuthorized) {
		t.Fatalf("third-party revoke: expected not authorized, got %v", err)
	}
	if err := service.RevokeShare(share.ID, 1); err != nil {
		t.Fatalf("sender revoke failed: %v", err)
	}
}

func TestAchievementScopeSharesMilestones(t *testing.T) {
	service, _, records := newShareFixture()
	records.achievements = []models.Achievement{
		{UserID: 1, ExerciseType: models.ExerciseRunning, Milestone: 10000, CreatedAt: day(4, 1)},
		{UserID: 1, ExerciseType: models.ExerciseCycling, Milestone: 50000, CreatedAt: day(4, 2)},
	}

	share, err := service.CreateShare(1, 2, ShareScopeInput{Achievements: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("create share failed: %v", err)
	}

	data, err := service.ResolveShare(share.ID, 2, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(data.Achievements) != 1 || data.Achievements[0].ExerciseType != models.ExerciseRunning {
		t.Fatalf("achievement scope should expose running milestones only, got %+v", data.Achievements)
	}
}

func TestPreviewShareMatchesResolveWithoutPersisting(t *testing.T) {
	service, store, records := newShareFixture()
	records.exercises = []models.Exercise{
		{UserID: 1, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": 1000, "duration": 10}, CreatedAt: day(3, 1)},
	}

	data, err := service.PreviewShare(1, ShareScopeInput{ExerciseTypes: []string{"running"}}, shareStart, shareEnd)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(data.Exercises) != 1 {
		t.Fatalf("preview should see the running record, got %+v", data.Exercises)
	}
	if len(store.shares) != 0 {
		t.Fatalf("preview must not persist a share")
	}
}
