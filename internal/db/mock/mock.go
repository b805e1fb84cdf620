package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ogcard/internal/card"
	applog "ogcard/internal/log"
	"ogcard/models"
)

// New returns an in-memory sqlite database seeded with a handful of render events
// so the stats endpoint has something to report during local development.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:ogcard-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.RenderEvent{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.RenderEvent{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		applog.Debug(ctx, "mock database already seeded", "events", existing)
		return nil
	}

	applog.Debug(ctx, "seeding mock database")

	samples := []card.RenderRequest{
		{Title: "Hello World", Theme: card.ThemeMidnight, Layout: card.LayoutStandard},
		{Title: "Shipping the new pricing page", Subtitle: "What changed and why", Theme: card.ThemeSunset, Layout: card.LayoutSplit},
		{Title: "Release notes", Emoji: "🚀", Theme: card.ThemeOcean, Layout: card.LayoutCentered},
		{Title: "Quarterly review", Theme: card.ThemeMinimal, Layout: card.LayoutMinimal},
		{Title: "We are hiring", Emoji: "✨", Theme: card.ThemeRose, Layout: card.LayoutBold},
	}

	for _, sample := range samples {
		event := models.RenderEvent{
			Theme:       string(sample.Theme),
			Layout:      string(sample.Layout),
			TitleLength: len([]rune(sample.Title)),
			HasSubtitle: sample.Subtitle != "",
			HasEmoji:    sample.Emoji != "",
		}
		if err := db.WithContext(ctx).Create(&event).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded", "events", len(samples))
	return nil
}
