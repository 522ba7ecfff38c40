// Package store persists the four record collections. Each collection is
// serialized as a single JSON document under its own fixed key in the kv
// substrate; every mutation is a whole-document read-modify-write.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/openslp/trialtrack-backend/internal/kv"
	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
)

const (
	clientsKey  = "trialtrack:clients"
	goalsKey    = "trialtrack:goals"
	sessionsKey = "trialtrack:sessions"
	settingsKey = "trialtrack:settings"
)

// readDoc loads the document under key into out, a non-nil pointer.
// Missing or unreadable bytes are treated as "no data": out keeps
// whatever value the caller passed in and the condition is logged, never
// surfaced.
func readDoc(ctx context.Context, kvs kv.Store, log *logger.Logger, key string, out any) error {
	raw, ok, err := kvs.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrStorageRead, key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	// Decode into a scratch value first: a document that fails partway
	// through (a type error after valid syntax) must not leave out
	// half-populated.
	scratch := reflect.New(reflect.TypeOf(out).Elem())
	scratch.Elem().Set(reflect.ValueOf(out).Elem())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		log.Warn("stored document unreadable, treating as empty", "key", key, "error", err)
		return nil
	}
	reflect.ValueOf(out).Elem().Set(scratch.Elem())
	return nil
}

func writeDoc(ctx context.Context, kvs kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrStorageWrite, key, err)
	}
	if err := kvs.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrStorageWrite, key, err)
	}
	return nil
}
