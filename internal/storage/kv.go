package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const DefaultNamespace = "studytime"

const upsertKV = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// KV stores JSON documents under namespaced keys.
//
// Get never fails: a missing key, an undecodable value or an unavailable
// database all yield the caller's default. Set never fails either; write
// problems are logged and the caller's in-memory state stays authoritative.
type KV struct {
	db        *sqlx.DB
	namespace string
}

func NewKV(db *sql.DB, namespace string) *KV {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	kv := &KV{namespace: namespace}
	if db != nil {
		kv.db = sqlx.NewDb(db, "sqlite")
	}
	return kv
}

func (kv *KV) Namespace() string { return kv.namespace }

func (kv *KV) fullKey(key string) string {
	return kv.namespace + ":" + key
}

func (kv *KV) available() bool {
	return kv != nil && kv.db != nil
}

// Raw returns the stored text for key. ok is false when the key is absent.
func (kv *KV) Raw(ctx context.Context, key string) (value string, ok bool, err error) {
	if !kv.available() {
		return "", false, errors.New("store unavailable")
	}
	err = kv.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, kv.fullKey(key))
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

// Put writes raw text for key.
func (kv *KV) Put(ctx context.Context, key, value string) error {
	if !kv.available() {
		return errors.New("store unavailable")
	}
	if _, err := kv.db.ExecContext(ctx, upsertKV, kv.fullKey(key), value, time.Now().UTC()); err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}

// Keys lists the keys stored in this namespace, without the prefix.
func (kv *KV) Keys(ctx context.Context) ([]string, error) {
	if !kv.available() {
		return nil, errors.New("store unavailable")
	}
	var full []string
	prefix := kv.namespace + ":"
	if err := kv.db.SelectContext(ctx, &full, `SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`, len(prefix), prefix); err != nil {
		return nil, fmt.Errorf("kv keys: %w", err)
	}
	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, k[len(prefix):])
	}
	return keys, nil
}

// Get decodes the value stored under key, or returns def.
func Get[T any](ctx context.Context, kv *KV, key string, def T) T {
	raw, ok, err := kv.Raw(ctx, key)
	if err != nil {
		zap.L().Warn("store read failed, using default", zap.String("key", key), zap.Error(ReadError{Key: key, Err: err}))
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		zap.L().Warn("store value corrupted, using default", zap.String("key", key), zap.Error(DecodeError{Key: key, Err: err}))
		return def
	}
	return v
}

// Set encodes value as JSON and stores it under key.
func Set[T any](ctx context.Context, kv *KV, key string, value T) {
	if err := kv.set(ctx, key, value); err != nil {
		zap.L().Warn("store write failed", zap.String("key", key), zap.Error(err))
	}
}

func (kv *KV) set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return WriteError{Key: key, Err: err}
	}
	if err := kv.Put(ctx, key, string(b)); err != nil {
		return WriteError{Key: key, Err: err}
	}
	return nil
}

// SetMany writes every entry in one transaction. Nothing is written if any
// value fails to encode.
func (kv *KV) SetMany(ctx context.Context, values map[string]any) {
	if err := kv.setMany(ctx, values); err != nil {
		zap.L().Warn("store batch write failed", zap.Int("keys", len(values)), zap.Error(err))
	}
}

func (kv *KV) setMany(ctx context.Context, values map[string]any) error {
	encoded := make(map[string]string, len(values))
	for key, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return WriteError{Key: key, Err: err}
		}
		encoded[key] = string(b)
	}
	if !kv.available() {
		return WriteError{Err: errors.New("store unavailable")}
	}
	now := time.Now().UTC()
	return WithTx(ctx, kv.db.DB, func(tx *sql.Tx) error {
		for key, raw := range encoded {
			if _, err := tx.ExecContext(ctx, upsertKV, kv.fullKey(key), raw, now); err != nil {
				return WriteError{Key: key, Err: err}
			}
		}
		return nil
	})
}
