package services

import (
	"errors"
	"time"

	"takabet-api/helper"
	"takabet-api/models"
	"takabet-api/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	GetPosts(params models.PostListParams) (*models.PaginatedPosts, error)
	GetPostBySlug(slug string) (*models.Post, error)
	CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint) error
	GetAllPosts(page, limit int) (*models.PaginatedPosts, error)
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *postService) GetPosts(params models.PostListParams) (*models.PaginatedPosts, error) {
	page, limit := normalizePaging(params.Page, params.Limit)

	filter := repositories.PostFilter{
		Featured: params.Featured == "true",
		Search:   params.Search,
	}

	if params.Category != "" {
		category, err := s.categoryRepo.GetBySlug(params.Category)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// An unknown category slug matches nothing, not an error.
				return emptyPage(page), nil
			}
			return nil, err
		}
		filter.CategoryID = category.ID
	}

	posts, total, err := s.postRepo.GetPublished(filter, page, limit)
	if err != nil {
		return nil, err
	}

	return paginate(posts, page, limit, total), nil
}

func (s *postService) GetPostBySlug(slug string) (*models.Post, error) {
	post, err := s.postRepo.GetPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViews(post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

func (s *postService) CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	post := &models.Post{
		Title:           req.Title,
		Slug:            helper.UniquePostSlug(req.Title),
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		CategoryID:      req.CategoryID,
		AuthorID:        authorID,
		Tags:            req.Tags,
		Status:          status,
		Featured:        req.Featured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}

	if post.Status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// Load the complete post with relations resolved
	return s.postRepo.GetByID(post.ID)
}

func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		post.Title = *req.Title
		post.Slug = helper.UniquePostSlug(*req.Title)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.CategoryID != nil {
		post.CategoryID = *req.CategoryID
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.MetaTitle != nil {
		post.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		post.MetaDescription = *req.MetaDescription
	}

	if req.Status != nil {
		post.Status = *req.Status
	}
	// publishedAt is stamped the first time a post goes published and is
	// never overwritten after that.
	if post.Status == models.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(post.ID)
}

func (s *postService) DeletePost(id uint) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	return s.postRepo.Delete(id)
}

func (s *postService) GetAllPosts(page, limit int) (*models.PaginatedPosts, error) {
	page, limit = normalizePaging(page, limit)

	posts, total, err := s.postRepo.GetAll(page, limit)
	if err != nil {
		return nil, err
	}

	return paginate(posts, page, limit, total), nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func paginate(posts []models.Post, page, limit int, total int64) *models.PaginatedPosts {
	if posts == nil {
		posts = []models.Post{}
	}
	return &models.PaginatedPosts{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  helper.TotalPages(total, limit),
		TotalPosts:  total,
		HasMore:     helper.HasMore(page, limit, total),
	}
}

func emptyPage(page int) *models.PaginatedPosts {
	return &models.PaginatedPosts{
		Posts:       []models.Post{},
		CurrentPage: page,
	}
}
