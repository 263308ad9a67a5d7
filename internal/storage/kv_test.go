package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGetMissingKeyReturnsDefault(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()

	got := Get(ctx, kv, KeyTheme, ThemeLight)
	assert.Equal(t, ThemeLight, got)

	profile := Get(ctx, kv, KeyUserProfile, DefaultProfile())
	assert.Equal(t, "Alex Starr", profile.Name)
	assert.Equal(t, "Pro Member", profile.Title)
}

func TestSetThenGetRoundTrip(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()

	subjects := []Subject{{ID: "s1", Name: "Math", Color: "#38bdf8", Category: "STEM"}}
	Set(ctx, kv, KeySubjects, subjects)

	got := Get(ctx, kv, KeySubjects, []Subject{})
	require.Len(t, got, 1)
	assert.Equal(t, subjects[0], got[0])

	raw, ok, err := kv.Raw(ctx, KeySubjects)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"s1","name":"Math","color":"#38bdf8","category":"STEM"}]`, raw)
}

func TestCorruptedValueFallsBackToDefault(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, KeySessions, "{not json"))

	got := Get(ctx, kv, KeySessions, []StudySession{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnavailableStoreNeverFails(t *testing.T) {
	db := openTestDB(t)
	kv := NewKV(db, "")
	require.NoError(t, db.Close())
	ctx := context.Background()

	Set(ctx, kv, KeySidebarCollapsed, true)
	assert.False(t, Get(ctx, kv, KeySidebarCollapsed, false))

	var nilKV *KV
	assert.Equal(t, ThemeDark, Get(ctx, nilKV, KeyTheme, ThemeDark))
}

func TestUnencodableValueIsSwallowed(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()

	Set(ctx, kv, "bad", func() {})
	_, ok, err := kv.Raw(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)

	err = kv.set(ctx, "bad", make(chan int))
	var werr WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "bad", werr.Key)
}

func TestNamespacesAreIsolated(t *testing.T) {
	db := openTestDB(t)
	a := NewKV(db, "alpha")
	b := NewKV(db, "beta")
	ctx := context.Background()

	Set(ctx, a, KeyTheme, ThemeDark)
	assert.Equal(t, ThemeLight, Get(ctx, b, KeyTheme, ThemeLight))
	assert.Equal(t, ThemeDark, Get(ctx, a, KeyTheme, ThemeLight))

	keys, err := a.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyTheme}, keys)
}

func TestSaveCascadeWritesAllKeys(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()

	SaveCascade(ctx, kv,
		[]Subject{{ID: "s2", Name: "History"}},
		nil,
		[]StudySession{{ID: "x", SubjectID: "s2", StartTime: 1000, EndTime: 61000, Duration: 60}},
	)

	assert.Len(t, NewSubjectRepo(kv).ListAll(ctx), 1)
	tasks := NewTaskRepo(kv).ListAll(ctx)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	sessions := NewSessionRepo(kv).ListAll(ctx)
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(60), sessions[0].Duration)
}

func TestPrefsDefaultsAndSchemaVersion(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()
	repo := NewPrefsRepo(kv)

	p := repo.Load(ctx)
	assert.Equal(t, ThemeLight, p.Theme)
	assert.Equal(t, DefaultProfile(), p.Profile)
	assert.False(t, p.SidebarCollapsed)

	Set(ctx, kv, KeyTheme, Theme("sepia"))
	assert.Equal(t, ThemeLight, repo.Load(ctx).Theme)

	assert.Equal(t, 0, repo.EnsureSchemaVersion(ctx))
	assert.Equal(t, SchemaVersion, repo.EnsureSchemaVersion(ctx))
}

func TestSchemaVersionKeepsNewerStamp(t *testing.T) {
	kv := NewKV(openTestDB(t), "")
	ctx := context.Background()
	repo := NewPrefsRepo(kv)

	Set(ctx, kv, KeySchemaVersion, SchemaVersion+6)
	assert.Equal(t, SchemaVersion+6, repo.EnsureSchemaVersion(ctx))
	assert.Equal(t, SchemaVersion+6, Get(ctx, kv, KeySchemaVersion, 0))
}
