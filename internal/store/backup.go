package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openslp/trialtrack-backend/internal/kv"
	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type BackupStore interface {
	// Export bundles all four collections plus an export timestamp into
	// one document.
	Export(ctx context.Context) (types.Backup, error)
	// Import overwrites each collection present in the document wholesale;
	// missing keys are skipped. An unparseable document fails with
	// ErrImportFormat.
	Import(ctx context.Context, raw []byte) error
	// ClearAll removes all four documents unconditionally.
	ClearAll(ctx context.Context) error
}

type backupStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewBackupStore(kvs kv.Store, baseLog *logger.Logger) BackupStore {
	return &backupStore{kv: kvs, log: baseLog.With("store", "BackupStore")}
}

func (bs *backupStore) Export(ctx context.Context) (types.Backup, error) {
	clients := []types.Client{}
	goals := []types.Goal{}
	sessions := []types.Session{}
	settings := types.DefaultSettings()

	if err := readDoc(ctx, bs.kv, bs.log, clientsKey, &clients); err != nil {
		return types.Backup{}, err
	}
	if err := readDoc(ctx, bs.kv, bs.log, goalsKey, &goals); err != nil {
		return types.Backup{}, err
	}
	if err := readDoc(ctx, bs.kv, bs.log, sessionsKey, &sessions); err != nil {
		return types.Backup{}, err
	}
	if err := readDoc(ctx, bs.kv, bs.log, settingsKey, &settings); err != nil {
		return types.Backup{}, err
	}

	return types.Backup{
		ExportDate: time.Now().UTC(),
		Clients:    &clients,
		Goals:      &goals,
		Sessions:   &sessions,
		Settings:   &settings,
	}, nil
}

func (bs *backupStore) Import(ctx context.Context, raw []byte) error {
	var doc types.Backup
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrImportFormat, err)
	}

	// Last write wins per collection: present keys overwrite wholesale,
	// absent keys leave the existing collection untouched.
	if doc.Clients != nil {
		if err := writeDoc(ctx, bs.kv, clientsKey, *doc.Clients); err != nil {
			return err
		}
	}
	if doc.Goals != nil {
		if err := writeDoc(ctx, bs.kv, goalsKey, *doc.Goals); err != nil {
			return err
		}
	}
	if doc.Sessions != nil {
		if err := writeDoc(ctx, bs.kv, sessionsKey, *doc.Sessions); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		settings := *doc.Settings
		settings.Clamp()
		if err := writeDoc(ctx, bs.kv, settingsKey, settings); err != nil {
			return err
		}
	}
	return nil
}

func (bs *backupStore) ClearAll(ctx context.Context) error {
	if err := bs.kv.Delete(ctx, clientsKey, goalsKey, sessionsKey, settingsKey); err != nil {
		return fmt.Errorf("%w: clear: %v", apperr.ErrStorageWrite, err)
	}
	return nil
}
