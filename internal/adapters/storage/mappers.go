package storage

import (
	"github.com/google/uuid"

	"github.com/renato0307/ombre/internal/domain"
)

// paletteModelToDomain converts a PaletteModel (GORM) to domain.Palette
func paletteModelToDomain(m PaletteModel) domain.Palette {
	return domain.Palette{
		From: domain.Color(m.FromColor),
		Name: m.Name,
		To:   domain.Color(m.ToColor),
	}
}

// domainToPaletteModel converts a domain.Palette to PaletteModel (GORM) with a fresh ID
func domainToPaletteModel(p domain.Palette) PaletteModel {
	return PaletteModel{
		FromColor: string(p.From),
		ID:        uuid.New().String(),
		Name:      p.Name,
		ToColor:   string(p.To),
	}
}
