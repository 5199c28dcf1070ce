package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/swatch/internal/models"
)

// ErrEmptyPalette is returned when saving a palette with no colors
var ErrEmptyPalette = errors.New("cannot save an empty palette")

// Append stores a copy of the palette after every previously saved one
func (s *Store) Append(p models.Palette) (*models.SavedPalette, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	colors, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}

	var saved models.SavedPalette
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SavedPalette{}).Count(&count).Error; err != nil {
			return err
		}

		saved = models.SavedPalette{
			Position: int(count),
			Colors:   string(colors),
		}
		return tx.Create(&saved).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save palette: %w", err)
	}

	return &saved, nil
}

// List returns every saved palette in insertion order
func (s *Store) List() ([]models.Palette, error) {
	var rows []models.SavedPalette
	if err := s.db.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	palettes := make([]models.Palette, 0, len(rows))
	for _, row := range rows {
		p, err := row.Palette()
		if err != nil {
			return nil, fmt.Errorf("saved palette #%d is corrupt: %w", row.Position, err)
		}
		palettes = append(palettes, p)
	}

	return palettes, nil
}

// Get returns the saved palette at the given position
func (s *Store) Get(index int) (models.Palette, error) {
	var row models.SavedPalette
	err := s.db.Where("position = ?", index).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("saved palette #%d not found", index)
	}
	if err != nil {
		return nil, err
	}

	return row.Palette()
}

// Count returns the number of saved palettes
func (s *Store) Count() (int, error) {
	var count int64
	if err := s.db.Model(&models.SavedPalette{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
