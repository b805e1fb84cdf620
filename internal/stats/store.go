// Package stats persists served cards and aggregates them by theme and layout.
package stats

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"ogcard/internal/card"
	"ogcard/models"
)

// ErrUnavailable is returned when the store has no database behind it.
var ErrUnavailable = errors.New("stats: no database configured")

// Summary aggregates recorded render events.
type Summary struct {
	Total    int64            `json:"total"`
	ByTheme  map[string]int64 `json:"by_theme"`
	ByLayout map[string]int64 `json:"by_layout"`
}

// Store records render events in a gorm database.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db. A nil db yields a store whose operations return ErrUnavailable.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Enabled reports whether the store has a database.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Record stores one event for req.
func (s *Store) Record(ctx context.Context, req card.RenderRequest) error {
	if !s.Enabled() {
		return ErrUnavailable
	}

	event := models.RenderEvent{
		Theme:       string(req.Theme),
		Layout:      string(req.Layout),
		TitleLength: utf8.RuneCountInString(req.Title),
		HasSubtitle: req.Subtitle != "",
		HasEmoji:    req.Emoji != "",
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("record render event: %w", err)
	}
	return nil
}

type groupCount struct {
	Name  string
	Total int64
}

// Summary counts every recorded event, grouped by theme and by layout.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	if !s.Enabled() {
		return Summary{}, ErrUnavailable
	}

	summary := Summary{
		ByTheme:  make(map[string]int64),
		ByLayout: make(map[string]int64),
	}

	if err := s.db.WithContext(ctx).Model(&models.RenderEvent{}).Count(&summary.Total).Error; err != nil {
		return Summary{}, fmt.Errorf("count render events: %w", err)
	}

	for column, target := range map[string]map[string]int64{
		"theme":  summary.ByTheme,
		"layout": summary.ByLayout,
	} {
		var rows []groupCount
		err := s.db.WithContext(ctx).
			Model(&models.RenderEvent{}).
			Select(column + " AS name, COUNT(*) AS total").
			Group(column).
			Scan(&rows).Error
		if err != nil {
			return Summary{}, fmt.Errorf("group render events by %s: %w", column, err)
		}
		for _, row := range rows {
			target[row.Name] = row.Total
		}
	}

	return summary, nil
}
