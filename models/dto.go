package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type CreatePostRequest struct {
	Title           string     `json:"title" validate:"required,min=1,max=255"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content" validate:"required"`
	FeaturedImage   string     `json:"featuredImage"`
	CategoryID      uint       `json:"categoryId" validate:"required"`
	Tags            []string   `json:"tags"`
	Status          PostStatus `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured        bool       `json:"featured"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
}

// UpdatePostRequest is the allow-list of admin-updatable fields. Slug,
// author, views and timestamps are never taken from a payload; slug is
// re-derived when the title changes.
type UpdatePostRequest struct {
	Title           *string     `json:"title" validate:"omitempty,min=1,max=255"`
	Excerpt         *string     `json:"excerpt"`
	Content         *string     `json:"content" validate:"omitempty,min=1"`
	FeaturedImage   *string     `json:"featuredImage"`
	CategoryID      *uint       `json:"categoryId"`
	Tags            []string    `json:"tags"`
	Status          *PostStatus `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured        *bool       `json:"featured"`
	MetaTitle       *string     `json:"metaTitle"`
	MetaDescription *string     `json:"metaDescription"`
}

type PostListParams struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Featured string `form:"featured"`
}

type PaginatedPosts struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalPosts  int64  `json:"totalPosts"`
	HasMore     bool   `json:"hasMore"`
}
