package services

import (
	"context"
	"encoding/json"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/models"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type snapshotReplacer interface {
	Snapshot() models.Snapshot
	Replace(ctx context.Context, snap models.Snapshot)
	ClearAll(ctx context.Context)
}

type backupService struct {
	repo snapshotReplacer
}

func NewBackupService(repo snapshotReplacer) *backupService {
	return &backupService{repo: repo}
}

// Export writes the full state wrapped in {"hsBooksData": ...}.
func (s *backupService) Export(ctx context.Context) ([]byte, error) {
	snap := s.repo.Snapshot()
	data, err := json.MarshalIndent(dto.Backup{HSBooksData: &snap}, "", "  ")
	if err != nil {
		return nil, errs.NewDatabaseError("export", "failed to encode backup", err)
	}
	return data, nil
}

// Import replaces the whole state with a previously exported backup.
func (s *backupService) Import(ctx context.Context, data []byte) error {
	var b dto.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return errs.NewValidationError("invalid backup file: " + err.Error())
	}
	if b.HSBooksData == nil {
		return errs.NewValidationError("invalid backup file: missing hsBooksData")
	}

	s.repo.Replace(ctx, *b.HSBooksData)
	logger.FromContext(ctx).Info("backup imported",
		"expenses", len(b.HSBooksData.Expenses),
		"income", len(b.HSBooksData.Income),
		"loans", len(b.HSBooksData.Loans))
	return nil
}

func (s *backupService) Clear(ctx context.Context) {
	s.repo.ClearAll(ctx)
	logger.FromContext(ctx).Info("all data cleared")
}
