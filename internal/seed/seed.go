// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"codegenesis/internal/models"
	"codegenesis/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"notifications", "likes", "comments", "post_tags",
		"posts", "follows", "tags", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Seed populates the database with test data
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	if err := repository.NewTagRepository(s.db).SeedDefaults(context.Background()); err != nil {
		return fmt.Errorf("failed to seed default tags: %w", err)
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Seeding complete. All test users have the password: password123")
	return nil
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		Username:  fmt.Sprintf("%s%s%d", first, last, gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FullName:  first + " " + last,
		Bio:       gofakeit.Sentence(10),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsActive:  true,
		Role:      models.RoleUser,
	}
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (s *Seeder) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:      user.ID,
		IsPublished: true,
	}

	// realistic created_at spread over the last 90 days
	daysBack := s.rand.Intn(90)
	hoursBack := s.rand.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Seeder) createUsers(count int) ([]*models.User, error) {
	// one predictable admin for manual testing
	admin, err := s.CreateUser(func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@example.com"
		u.FullName = "Admin User"
		u.Role = models.RoleAdmin
	})
	if err != nil {
		return nil, err
	}

	users := []*models.User{admin}
	for i := 1; i < count; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, count int) ([]*models.Post, error) {
	var tags []*models.Tag
	if err := s.db.Find(&tags).Error; err != nil {
		return nil, err
	}

	var posts []*models.Post
	for i := 0; i < count; i++ {
		author := users[s.rand.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return nil, err
		}
		if len(tags) > 0 && s.rand.Intn(3) > 0 {
			attach := []*models.Tag{tags[s.rand.Intn(len(tags))]}
			if err := s.db.Model(post).Association("Tags").Append(attach); err != nil {
				return nil, err
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createEngagement wires follows, likes and comments between seeded users.
func (s *Seeder) createEngagement(users []*models.User, posts []*models.Post) error {
	for _, user := range users {
		for i := 0; i < s.rand.Intn(5); i++ {
			target := users[s.rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			follow := &models.Follow{FollowerID: user.ID, FollowingID: target.ID}
			// ignore duplicate pairs, the unique index enforces one edge
			s.db.Create(follow)
		}
	}

	for _, post := range posts {
		for i := 0; i < s.rand.Intn(6); i++ {
			liker := users[s.rand.Intn(len(users))]
			s.db.Create(&models.Like{UserID: liker.ID, PostID: post.ID})
		}

		var parentID *uint
		for i := 0; i < s.rand.Intn(4); i++ {
			commenter := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				Content:  gofakeit.Sentence(12),
				UserID:   commenter.ID,
				PostID:   post.ID,
				ParentID: parentID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}
			// occasionally thread the next comment under this one
			if parentID == nil && s.rand.Intn(2) == 0 {
				parentID = &comment.ID
			}
		}
	}
	return nil
}
