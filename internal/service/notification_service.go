package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationService struct {
	users  *repository.UserRepository
	movies *repository.MovieRepository
}

func NewNotificationService(users *repository.UserRepository, movies *repository.MovieRepository) *NotificationService {
	return &NotificationService{users: users, movies: movies}
}

// UpcomingMovies: estrenos futuros, el más próximo primero.
func (s *NotificationService) UpcomingMovies(ctx context.Context) ([]models.MovieSummary, error) {
	movies, err := s.movies.Upcoming(ctx, time.Now().UTC(), defaultListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]models.MovieSummary, 0, len(movies))
	for i := range movies {
		out = append(out, movies[i].Summary())
	}
	return out, nil
}

// SetPreference prende o apaga las notificaciones del usuario.
func (s *NotificationService) SetPreference(ctx context.Context, userID primitive.ObjectID, enabled bool) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	u.NotificationsEnabled = enabled
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Save(ctx, u); err != nil {
		return nil, saveErr(err)
	}
	return u, nil
}

// Notifications genera una notificación por cada estreno futuro (si el
// usuario las tiene habilitadas), persiste y devuelve la lista completa.
func (s *NotificationService) Notifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !u.NotificationsEnabled {
		return []models.Notification{}, nil
	}

	upcoming, err := s.movies.Upcoming(ctx, time.Now().UTC(), defaultListLimit)
	if err != nil {
		return nil, err
	}
	for i := range upcoming {
		msg := fmt.Sprintf("Upcoming movie: %s releases on %s",
			upcoming[i].Title, upcoming[i].ReleaseDate.Format("2006-01-02"))
		u.AddNotification(msg)
	}
	if len(upcoming) > 0 {
		u.UpdatedAt = time.Now().UTC()
		if err := s.users.Save(ctx, u); err != nil {
			return nil, saveErr(err)
		}
	}
	if u.Notifications == nil {
		return []models.Notification{}, nil
	}
	return u.Notifications, nil
}
