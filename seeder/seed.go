// Package seeder loads the demo dataset: one admin account, the category
// list, and a batch of sample posts. Run with `go run . seed`.
package seeder

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"takabet-api/helper"
	"takabet-api/logger"
	"takabet-api/models"
)

func Run(db *gorm.DB) error {
	// Clear existing data
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Post{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Category{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		return err
	}
	logger.Info("Data cleared")

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@takabet.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("Admin user created")

	categories := []models.Category{
		{Name: "Sports Betting", Description: "Latest sports betting news and tips", Icon: "⚽", Order: 1},
		{Name: "Casino Games", Description: "Casino game guides and strategies", Icon: "🎰", Order: 2},
		{Name: "Promotions", Description: "Latest betting promotions and bonuses", Icon: "🎁", Order: 3},
		{Name: "Betting Tips", Description: "Expert betting tips and predictions", Icon: "💡", Order: 4},
		{Name: "News", Description: "Latest betting industry news", Icon: "📰", Order: 5},
	}
	for i := range categories {
		categories[i].Slug = helper.Slugify(categories[i].Name)
		categories[i].IsActive = true
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	logger.Info("Categories created")

	titles := []string{
		"Top 10 Betting Strategies for Beginners",
		"How to Choose the Best Online Casino",
		"Understanding Betting Odds: A Complete Guide",
		"Weekly Football Betting Tips and Predictions",
		"New Player Welcome Bonus: 100% Match up to $500",
		"Live Casino vs Online Casino: Which is Better?",
		"Basketball Betting: Tips for March Madness",
		"Responsible Gambling: Setting Your Limits",
		"Cryptocurrency Betting: The Future of Online Gambling",
		"Best Casino Games with Highest RTP",
		"Tennis Betting Guide: Grand Slam Tournaments",
		"Slot Machine Tips and Tricks",
	}

	posts := make([]models.Post, 0, len(titles))
	now := time.Now()
	for i, title := range titles {
		status := models.StatusPublished
		if i%5 == 4 {
			status = models.StatusDraft
		}

		post := models.Post{
			Title:      title,
			Slug:       fmt.Sprintf("%s-%d", helper.Slugify(title), now.UnixMilli()+int64(i)),
			Excerpt:    fmt.Sprintf("A quick look at: %s", title),
			Content:    fmt.Sprintf("Full article content for %q. Replace with real editorial copy.", title),
			CategoryID: categories[i%len(categories)].ID,
			AuthorID:   admin.ID,
			Tags:       []string{"betting", "guide"},
			Status:     status,
			Featured:   i%4 == 0,
		}
		if status == models.StatusPublished {
			publishedAt := now.Add(-time.Duration(i) * time.Hour)
			post.PublishedAt = &publishedAt
		}
		posts = append(posts, post)
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}
	logger.Info("Sample posts created", "count", len(posts))

	return nil
}
