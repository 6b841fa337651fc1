package repository

import (
	"context"
	"errors"

	"codegenesis/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilters narrows post listings. Zero-value fields are not applied.
type PostFilters struct {
	Search         string
	TagName        string
	AuthorUsername string
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagNames []string) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	GetDetails(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	PeekByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filters PostFilters, limit, offset int, viewerID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and attaches its tags in one transaction, so a
// failed tag attachment never leaves an orphaned post behind.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(post).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapInternal(err)
}

// GetByID fetches one post and increments its view count. The increment
// commits with the read in the same transaction.
func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return r.applyPostDetails(tx, viewerID).
			Preload("User").
			Preload("Tags").
			First(&post, id).Error
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return &post, nil
}

// GetDetails fetches one post with counts and tags but without counting a
// view. Mutation endpoints use it to echo the result back.
func (r *postRepository) GetDetails(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// PeekByID fetches a post without counting a view. Used for existence and
// ownership checks before mutations.
func (r *postRepository) PeekByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns published posts matching the filters and increments the view
// count of every returned post as part of the same transaction.
func (r *postRepository) List(ctx context.Context, filters PostFilters, limit, offset int, viewerID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := r.applyFilters(tx.Model(&models.Post{}), filters).
			Order("posts.created_at DESC, posts.id DESC").
			Limit(limit).
			Offset(offset).
			Pluck("posts.id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Model(&models.Post{}).
			Where("id IN ?", ids).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			return err
		}
		return r.applyPostDetails(tx, viewerID).
			Preload("User").
			Preload("Tags").
			Where("posts.id IN ?", ids).
			Order("posts.created_at DESC, posts.id DESC").
			Find(&posts).Error
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return posts, nil
}

// applyFilters restricts a post query to published posts matching the filters.
func (r *postRepository) applyFilters(db *gorm.DB, f PostFilters) *gorm.DB {
	db = db.Where("posts.is_published = ?", true)
	if f.Search != "" {
		like := "%" + f.Search + "%"
		db = db.Where("posts.title LIKE ? OR posts.content LIKE ?", like, like)
	}
	if f.TagName != "" {
		db = db.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.name = ?", f.TagName)
	}
	if f.AuthorUsername != "" {
		db = db.
			Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username = ?", f.AuthorUsername)
	}
	return db
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", viewerID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		if replaceTags {
			tags, err := resolveTags(tx, tagNames)
			if err != nil {
				return err
			}
			// Replace, not append: the supplied set becomes the full set.
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapInternal(err)
}

// Delete removes the post together with its owned comments, like edges, and
// tag attachments. Tags and users themselves are never cascade-deleted.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
	return wrapInternal(err)
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&like).Error; err != nil {
		// Concurrent double-likes race at the existence check; the unique
		// index on (user_id, post_id) rejects the loser.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already liked this post")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewValidationError("Post not liked")
	}
	return nil
}
