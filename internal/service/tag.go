package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/internal/models"
)

// TagService handles tag operations scoped to the owning user.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// List returns the caller's tags ordered by name descending. With
// assignedOnly set, only tags linked to at least one recipe are returned,
// each at most once.
func (s *TagService) List(userID uuid.UUID, assignedOnly bool) ([]models.Tag, error) {
	query := s.db.Where("user_id = ?", userID)
	if assignedOnly {
		query = query.Where("id IN (SELECT DISTINCT tag_id FROM recipe_tags)")
	}

	var tags []models.Tag
	if err := query.Order("name DESC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Create(userID uuid.UUID, name string) (*models.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	tag := models.Tag{Name: name, UserID: userID}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
