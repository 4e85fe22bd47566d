package models

import (
	"time"

	"github.com/lib/pq"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

type Post struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	Title           string         `json:"title" gorm:"not null"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content" gorm:"type:text;not null"`
	FeaturedImage   string         `json:"featuredImage"`
	CategoryID      uint           `json:"categoryId" gorm:"not null;index"`
	Category        *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID        uint           `json:"authorId" gorm:"not null;index"`
	Author          *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags            pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status          PostStatus     `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	Views           int64          `json:"views" gorm:"default:0"`
	Featured        bool           `json:"featured" gorm:"default:false"`
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	PublishedAt     *time.Time     `json:"publishedAt"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
