package repositories

import (
	"takabet-api/models"

	"gorm.io/gorm"
)

// PostFilter narrows the public post listing. A zero value matches all
// published posts.
type PostFilter struct {
	CategoryID uint
	Featured   bool
	Search     string
}

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetPublishedBySlug(slug string) (*models.Post, error)
	GetPublished(filter PostFilter, page, limit int) ([]models.Post, int64, error)
	GetAll(page, limit int) ([]models.Post, int64, error)
	Update(post *models.Post) error
	Delete(id uint) error
	IncrementViews(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Column selects mirror the reference-population contract: responses carry
// category name+slug and the author's username (email only where noted).
func selectCategoryRef(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "slug")
}

func selectAuthorRef(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}

func selectAuthorContact(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email")
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Omit("Category", "Author").Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Category", selectCategoryRef).
		Preload("Author", selectAuthorRef).
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetPublishedBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		Preload("Category", selectCategoryRef).
		Preload("Author", selectAuthorContact).
		First(&post).Error
	return &post, err
}

func (r *postRepository) GetPublished(filter PostFilter, page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Where("status = ?", models.StatusPublished)

	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if filter.Featured {
		query = query.Where("featured = ?", true)
	}

	// Full-text match over title, content and tags; ranking is left to the
	// database. Backed by the GIN index created in config.Migrate.
	if filter.Search != "" {
		query = query.Where(
			`to_tsvector('english', coalesce(title, '') || ' ' || coalesce(content, '') || ' ' ||
				coalesce(array_to_string(tags, ' '), '')) @@ plainto_tsquery('english', ?)`,
			filter.Search,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Category", selectCategoryRef).
		Preload("Author", selectAuthorRef).
		Order("published_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) GetAll(page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Category", selectCategoryRef).
		Preload("Author", selectAuthorContact).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Omit("Category", "Author").Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// IncrementViews bumps the counter in a single statement so concurrent
// readers cannot lose updates.
func (r *postRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
