package service

import (
	"context"
	"fmt"
	"time"

	"minecoin/internal/model"
	"minecoin/internal/repository"
	"minecoin/pkg/util"
)

// NewsService handles announcements.
type NewsService struct {
	news repository.NewsRepository
}

// NewNewsService creates a new news service.
func NewNewsService(news repository.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

// List returns all announcements, newest first.
func (s *NewsService) List(ctx context.Context) ([]model.NewsItem, error) {
	return s.news.List(ctx)
}

// Add publishes a new announcement.
func (s *NewsService) Add(ctx context.Context, req *model.NewsRequest) (*model.NewsItem, error) {
	item := &model.NewsItem{
		ID:       util.NewID(),
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Date:     time.Now().UTC(),
	}
	if err := s.news.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to publish news: %w", err)
	}
	return item, nil
}

// Delete removes an announcement. Returns false when the id does not exist.
func (s *NewsService) Delete(ctx context.Context, id string) (bool, error) {
	return s.news.Delete(ctx, id)
}
