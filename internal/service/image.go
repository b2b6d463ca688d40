package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/internal/models"
)

// ImageService stores recipe images. The payload must decode as an image
// before anything is written; a rejected upload leaves the recipe's stored
// image untouched.
type ImageService struct {
	db    *gorm.DB
	store ImageStore
}

func NewImageService(db *gorm.DB, store ImageStore) *ImageService {
	return &ImageService{db: db, store: store}
}

// UploadRecipeImage validates and stores an image for one of the caller's
// recipes, returning the stored path. The filename is a fresh random
// identifier plus the original extension; user input never names the file.
func (s *ImageService) UploadRecipeImage(ctx context.Context, userID uuid.UUID, recipeID uint, data []byte, originalName string) (string, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", ErrInvalidImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), ext)

	path, err := s.store.Save(ctx, data, name)
	if err != nil {
		return "", err
	}

	if err := s.db.Model(&recipe).Update("image_path", path).Error; err != nil {
		return "", err
	}

	return path, nil
}
