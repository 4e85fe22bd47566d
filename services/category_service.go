package services

import (
	"errors"

	"takabet-api/helper"
	"takabet-api/models"
	"takabet-api/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetCategories() ([]models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetActive()
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.categoryRepo.GetActiveBySlug(slug)
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = helper.Slugify(req.Name)
	}

	// Check if slug is already taken
	if _, err := s.categoryRepo.GetBySlug(slug); err == nil {
		return nil, errors.New("category slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
		IsActive:    isActive,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if _, err := s.categoryRepo.GetBySlug(*req.Slug); err == nil {
			return nil, errors.New("category slug already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Slug = *req.Slug
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes the category unconditionally. Posts referencing it
// keep their category id; dangling references are tolerated.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	return s.categoryRepo.Delete(id)
}
