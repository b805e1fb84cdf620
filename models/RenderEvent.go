package models

import "gorm.io/gorm"

// RenderEvent records a single card served by the image endpoint.
type RenderEvent struct {
	gorm.Model
	Theme       string `gorm:"type:varchar(16);not null;index" json:"theme"`
	Layout      string `gorm:"type:varchar(16);not null;index" json:"layout"`
	TitleLength int    `gorm:"not null;default:0" json:"title_length"`
	HasSubtitle bool   `gorm:"not null;default:false" json:"has_subtitle"`
	HasEmoji    bool   `gorm:"not null;default:false" json:"has_emoji"`
}
