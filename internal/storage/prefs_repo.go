package storage

import "context"

const (
	KeyTheme            = "theme"
	KeyUserProfile      = "userProfile"
	KeySidebarCollapsed = "sidebarCollapsed"
	KeySchemaVersion    = "schemaVersion"
)

type Preferences struct {
	Theme            Theme
	Profile          UserProfile
	SidebarCollapsed bool
}

type PrefsRepo struct {
	kv *KV
}

func NewPrefsRepo(kv *KV) *PrefsRepo {
	return &PrefsRepo{kv: kv}
}

func (r *PrefsRepo) Load(ctx context.Context) Preferences {
	p := Preferences{
		Theme:            Get(ctx, r.kv, KeyTheme, ThemeLight),
		Profile:          Get(ctx, r.kv, KeyUserProfile, DefaultProfile()),
		SidebarCollapsed: Get(ctx, r.kv, KeySidebarCollapsed, false),
	}
	if !p.Theme.IsValid() {
		p.Theme = ThemeLight
	}
	return p
}

func (r *PrefsRepo) SaveTheme(ctx context.Context, t Theme) {
	Set(ctx, r.kv, KeyTheme, t)
}

func (r *PrefsRepo) SaveProfile(ctx context.Context, p UserProfile) {
	Set(ctx, r.kv, KeyUserProfile, p)
}

func (r *PrefsRepo) SaveSidebarCollapsed(ctx context.Context, collapsed bool) {
	Set(ctx, r.kv, KeySidebarCollapsed, collapsed)
}

// EnsureSchemaVersion stamps the current schema version over an older one
// and returns the version found before. A newer stamp is left alone.
func (r *PrefsRepo) EnsureSchemaVersion(ctx context.Context) int {
	found := Get(ctx, r.kv, KeySchemaVersion, 0)
	if found < SchemaVersion {
		Set(ctx, r.kv, KeySchemaVersion, SchemaVersion)
	}
	return found
}
