package storage

import "time"

// PaletteModel is the GORM model for the palettes table
type PaletteModel struct {
	CreatedAt time.Time
	FromColor string `gorm:"not null;check:length(from_color) = 7"`
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_palette_name"`
	Position  int    `gorm:"not null;default:0;index:idx_palette_position"`
	ToColor   string `gorm:"not null;check:length(to_color) = 7"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PaletteModel) TableName() string { return "palettes" }
