package repository

import (
	"context"
	"errors"
	"strings"

	"codegenesis/internal/models"

	"gorm.io/gorm"
)

// defaultTags is the fixed set seeded when the tag table is empty.
var defaultTags = []models.Tag{
	{Name: "Technology", Description: "Tech-related posts", Color: "#3B82F6"},
	{Name: "Programming", Description: "Programming tutorials and tips", Color: "#10B981"},
	{Name: "Design", Description: "UI/UX and design posts", Color: "#F59E0B"},
	{Name: "Tutorial", Description: "Step-by-step guides", Color: "#8B5CF6"},
	{Name: "News", Description: "Latest updates and news", Color: "#EF4444"},
}

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	List(ctx context.Context) ([]*models.Tag, error)
	Count(ctx context.Context) (int64, error)
	SeedDefaults(ctx context.Context) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if tag.Color == "" {
		tag.Color = models.DefaultTagColor
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Tag already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Select("tags.*, (SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id) as posts_count").
		Order("tags.id").
		Find(&tags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// SeedDefaults inserts the default tag set. Seeding only once is guaranteed
// by the caller checking Count first plus the unique index on name, so
// concurrent bootstraps cannot double-seed.
func (r *tagRepository) SeedDefaults(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range defaultTags {
			tag := defaultTags[i]
			if err := tx.Create(&tag).Error; err != nil {
				if isUniqueConstraintError(err) {
					continue
				}
				return err
			}
		}
		return nil
	})
	return wrapInternal(err)
}

// resolveTags turns tag names into Tag rows, creating missing ones.
// Duplicate and blank names in the input collapse away; the unique index on
// name makes get-or-create safe against concurrent creators.
func resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tag, err := getOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func getOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{Name: name, Color: models.DefaultTagColor}
	if err := tx.Create(&tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Lost a race against a concurrent creator; use the winner.
			if err := tx.Where("name = ?", name).First(&tag).Error; err == nil {
				return &tag, nil
			}
		}
		return nil, err
	}
	return &tag, nil
}
