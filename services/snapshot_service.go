package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/club-system/storage"
)

// SnapshotService архивирует текущую сводку сезона в объектное
// хранилище. Снимок - обычный JSON DashboardSummary; ссылку на него
// клуб раздаёт родителям и спонсорам без доступа к самому сервису.
type SnapshotService interface {
	Archive(ctx context.Context, teamID int) (*storage.UploadResult, error)
	// Delete убирает устаревший снимок из архива. Ключ обязан лежать в
	// пространстве команды: чужие снимки удалить нельзя.
	Delete(ctx context.Context, teamID int, key string) error
}

type snapshotService struct {
	dashboard DashboardService
	uploader  storage.FileUploader
	now       func() time.Time
}

func NewSnapshotService(dashboard DashboardService, uploader storage.FileUploader) SnapshotService {
	return &snapshotService{
		dashboard: dashboard,
		uploader:  uploader,
		now:       time.Now,
	}
}

func (s *snapshotService) Archive(ctx context.Context, teamID int) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrSnapshotsUnavailable
	}

	summary, err := s.dashboard.GetSummary(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary for snapshot: %w", err)
	}

	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s.json", snapshotPrefix(teamID), s.now().UTC().Format("20060102T150405Z"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return result, nil
}

func (s *snapshotService) Delete(ctx context.Context, teamID int, key string) error {
	if s.uploader == nil {
		return ErrSnapshotsUnavailable
	}
	prefix := snapshotPrefix(teamID)
	if !strings.HasPrefix(key, prefix) {
		return fmt.Errorf("%w: snapshot key must start with %q", ErrValidationFailed, prefix)
	}
	if err := s.uploader.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

func snapshotPrefix(teamID int) string {
	return fmt.Sprintf("snapshots/team_%d/", teamID)
}
