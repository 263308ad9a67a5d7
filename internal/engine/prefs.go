package engine

import (
	"context"
	"strings"

	"studytime/internal/storage"
)

func (s *Service) Preferences() storage.Preferences { return s.prefs }

func (s *Service) Theme() storage.Theme { return s.prefs.Theme }

func (s *Service) SetTheme(ctx context.Context, t storage.Theme) error {
	if !t.IsValid() {
		return ErrInvalidTheme
	}
	s.prefs.Theme = t
	s.prefsRepo.SaveTheme(ctx, t)
	return nil
}

func (s *Service) ToggleTheme(ctx context.Context) storage.Theme {
	next := storage.ThemeDark
	if s.prefs.Theme == storage.ThemeDark {
		next = storage.ThemeLight
	}
	_ = s.SetTheme(ctx, next)
	return next
}

func (s *Service) Profile() storage.UserProfile { return s.prefs.Profile }

func (s *Service) UpdateProfile(ctx context.Context, p storage.UserProfile) (storage.UserProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Title = strings.TrimSpace(p.Title)
	if p.Name == "" {
		return s.prefs.Profile, ErrProfileNameMissing
	}
	s.prefs.Profile = p
	s.prefsRepo.SaveProfile(ctx, p)
	return p, nil
}

func (s *Service) SidebarCollapsed() bool { return s.prefs.SidebarCollapsed }

func (s *Service) ToggleSidebar(ctx context.Context) bool {
	s.prefs.SidebarCollapsed = !s.prefs.SidebarCollapsed
	s.prefsRepo.SaveSidebarCollapsed(ctx, s.prefs.SidebarCollapsed)
	return s.prefs.SidebarCollapsed
}
