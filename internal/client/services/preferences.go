package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/common"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences persists UI settings next to the session. They survive logout.
type Preferences struct {
	repo metadata.Repository
}

func NewPreferences(db *sql.DB) *Preferences {
	return &Preferences{repo: metadata.NewSQLiteRepository(db)}
}

// Theme returns the saved theme, light when unset or unknown.
func (p *Preferences) Theme(ctx context.Context) (Theme, error) {
	v, ok, err := p.repo.Get(ctx, common.MetaKeyTheme)
	if err != nil {
		return ThemeLight, fmt.Errorf("load theme: %w", err)
	}
	if !ok || Theme(v) != ThemeDark {
		return ThemeLight, nil
	}
	return ThemeDark, nil
}

func (p *Preferences) ToggleTheme(ctx context.Context) (Theme, error) {
	cur, err := p.Theme(ctx)
	if err != nil {
		return cur, err
	}

	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	if err := p.repo.Set(ctx, common.MetaKeyTheme, string(next)); err != nil {
		return cur, fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}
