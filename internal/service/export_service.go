package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ExportResult describes an uploaded log snapshot.
type ExportResult struct {
	Export *domain.LogExport
	URL    string // Presigned download URL
}

// LogExportService snapshots a user's log into object storage.
type LogExportService interface {
	ExportLog(ctx context.Context, userID string, query LogQuery) (*ExportResult, error)
	ListExports(ctx context.Context, userID string) ([]domain.LogExport, error)
	// GetExport issues a fresh download URL for an earlier snapshot.
	GetExport(ctx context.Context, userID, exportID string) (*ExportResult, error)
}

type logExportService struct {
	userService     UserService
	exerciseService ExerciseService
	exportRepo      repository.ExportRepository
	fileStorage     storage.FileStorage
	urlExpiry       time.Duration
	log             *zap.Logger
}

// NewLogExportService creates a new instance of logExportService.
func NewLogExportService(
	userService UserService,
	exerciseService ExerciseService,
	exportRepo repository.ExportRepository,
	fileStorage storage.FileStorage,
	urlExpiry time.Duration,
	log *zap.Logger,
) LogExportService {
	return &logExportService{
		userService:     userService,
		exerciseService: exerciseService,
		exportRepo:      exportRepo,
		fileStorage:     fileStorage,
		urlExpiry:       urlExpiry,
		log:             log,
	}
}

// exportDocument is the JSON layout written to the bucket. It matches the
// GET /logs response so consumers can read either.
type exportDocument struct {
	Username   string            `json:"username"`
	Count      int               `json:"count"`
	ID         string            `json:"_id"`
	Log        []domain.LogEntry `json:"log"`
	ExportedAt time.Time         `json:"exportedAt"`
}

// ExportLog uploads the log and records its metadata. If the metadata
// cannot be stored the uploaded object is removed again.
func (s *logExportService) ExportLog(ctx context.Context, userID string, query LogQuery) (*ExportResult, error) {
	exerciseLog, err := s.exerciseService.GetLog(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	doc := exportDocument{
		Username:   exerciseLog.User.Username,
		Count:      len(exerciseLog.Entries),
		ID:         exerciseLog.User.ID.Hex(),
		Log:        make([]domain.LogEntry, len(exerciseLog.Entries)),
		ExportedAt: time.Now().UTC(),
	}
	for i := range exerciseLog.Entries {
		doc.Log[i] = exerciseLog.Entries[i].ToLogEntry()
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", doc.ID, uuid.NewString())
	if err = s.fileStorage.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	export := &domain.LogExport{
		UserID:    exerciseLog.User.ID,
		ObjectKey: objectKey,
		Count:     doc.Count,
	}
	id, err := s.exportRepo.Create(ctx, export)
	if err != nil {
		if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
			s.log.Warn("orphaned export object", zap.String("key", objectKey), zap.Error(delErr))
		}
		return nil, fmt.Errorf("record export: %w", err)
	}
	export.ID = id

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{Export: export, URL: url}, nil
}

// ListExports returns the user's snapshots, newest first.
func (s *logExportService) ListExports(ctx context.Context, userID string) ([]domain.LogExport, error) {
	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.exportRepo.GetByUserID(ctx, user.ID)
}

func (s *logExportService) GetExport(ctx context.Context, userID, exportID string) (*ExportResult, error) {
	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(exportID)
	if err != nil {
		return nil, ErrExportNotFound
	}
	export, err := s.exportRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExportNotFound
		}
		return nil, err
	}
	// Another user's export id is treated as unknown.
	if export.UserID != user.ID {
		return nil, ErrExportNotFound
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, export.ObjectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &ExportResult{Export: export, URL: url}, nil
}
