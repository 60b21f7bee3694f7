package service

import (
	"context"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NewsService struct {
	news *repository.NewsRepository
}

func NewNewsService(news *repository.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

// Create publica un artículo. Si no viene fecha de publicación se usa
// la del servidor.
func (s *NewsService) Create(ctx context.Context, title, content, author string, publishedDate time.Time) (*models.News, error) {
	if title == "" || content == "" || author == "" {
		return nil, apperr.BadRequest("title, content and author are required")
	}
	now := time.Now().UTC()
	if publishedDate.IsZero() {
		publishedDate = now
	}
	n := &models.News{
		Title:         title,
		Content:       content,
		Author:        author,
		PublishedDate: publishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.news.Insert(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List devuelve los artículos más recientes primero.
func (s *NewsService) List(ctx context.Context, page, limit int) ([]models.News, error) {
	page, limit = normalizePage(page, limit)
	return s.news.FindAll(ctx, limit, (page-1)*limit)
}

func (s *NewsService) Get(ctx context.Context, id primitive.ObjectID) (*models.News, error) {
	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.NotFound("news article not found")
	}
	return n, nil
}

type UpdateNewsData struct {
	Title         *string
	Content       *string
	Author        *string
	PublishedDate *time.Time
}

func (s *NewsService) Update(ctx context.Context, id primitive.ObjectID, data UpdateNewsData) (*models.News, error) {
	if data.Title == nil && data.Content == nil && data.Author == nil && data.PublishedDate == nil {
		return nil, apperr.BadRequest("no fields to update")
	}

	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.NotFound("news article not found")
	}

	if data.Title != nil {
		n.Title = *data.Title
	}
	if data.Content != nil {
		n.Content = *data.Content
	}
	if data.Author != nil {
		n.Author = *data.Author
	}
	if data.PublishedDate != nil {
		n.PublishedDate = *data.PublishedDate
	}
	n.UpdatedAt = time.Now().UTC()

	if err := s.news.Save(ctx, n); err != nil {
		return nil, saveErr(err)
	}
	return n, nil
}

func (s *NewsService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.news.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("news article not found")
	}
	return nil
}
