package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	kms "cloud.google.com/go/kms/apiv1"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/config"
	"github.com/GregMSThompson/hsbooks/internal/crypto"
	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/notify"
	"github.com/GregMSThompson/hsbooks/internal/store"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

type Notifier interface {
	Notify(ctx context.Context, r dto.Reminder) error
}

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	KMS       *kms.KeyManagementClient
	Blobs     BlobStore
	Notifier  Notifier
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONLineHandler(os.Stderr))
	decimal.MarshalJSONWithoutQuotes = true

	switch cfg.Storage {
	case config.StorageFirestore:
		if cfg.ProjectID == "" {
			return bs, errors.New("PROJECTID is required for firestore storage")
		}
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, fmt.Errorf("firestore client: %w", err)
		}
		bs.Blobs = store.NewFirestoreStore(bs.Firestore, cfg.DeviceID)
	default:
		bs.Blobs, err = store.NewFileStore(cfg.DataDir)
		if err != nil {
			return bs, err
		}
	}

	if cfg.KMSKeyName != "" {
		bs.KMS, err = InitKMS(applicationCtx)
		if err != nil {
			return bs, fmt.Errorf("kms client: %w", err)
		}
		bs.Blobs = store.NewSealedStore(bs.Blobs, crypto.NewKMS(bs.KMS, cfg.KMSKeyName))
	}

	if cfg.EmailEnabled() {
		bs.Notifier = notify.NewEmailNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SenderEmail,
			To:       cfg.ReminderEmail,
		})
	} else {
		bs.Notifier = notify.NewLogNotifier()
	}

	bs.Log.Info("bootstrap complete",
		"storage", cfg.Storage,
		"sealed", cfg.KMSKeyName != "",
		"email", cfg.EmailEnabled())
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("firestore close failed", "error", err)
		}
	}
	if bs.KMS != nil {
		if err := bs.KMS.Close(); err != nil {
			bs.Log.Warn("kms close failed", "error", err)
		}
	}
}
