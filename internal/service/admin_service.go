package service

import (
	"context"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"
)

type AdminService struct {
	movies      *repository.MovieRepository
	users       *repository.UserRepository
	communities *repository.CommunityRepository
}

func NewAdminService(
	movies *repository.MovieRepository,
	users *repository.UserRepository,
	communities *repository.CommunityRepository,
) *AdminService {
	return &AdminService{movies: movies, users: users, communities: communities}
}

type CommunityActivity struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PostCount int    `json:"postCount"`
}

// SiteStats es el tablero del panel de administración.
type SiteStats struct {
	TotalUsers            int64                 `json:"totalUsers"`
	PopularMovies         []models.MovieSummary `json:"popularMovies"`
	MostReviewedMovies    []models.MovieSummary `json:"mostReviewedMovies"`
	MostActiveCommunities []CommunityActivity   `json:"mostActiveCommunities"`
	RecentSignups         []RecentUser          `json:"recentSignups"`
}

type RecentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Stats junta las cinco consultas del tablero. Cada una es una lectura
// independiente, no hay snapshot entre colecciones.
func (s *AdminService) Stats(ctx context.Context) (*SiteStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	popular, err := s.movies.Trending(ctx, trendingMinAvg, defaultListLimit)
	if err != nil {
		return nil, err
	}

	mostReviewed, err := s.movies.MostReviewed(ctx, defaultListLimit)
	if err != nil {
		return nil, err
	}

	active, err := s.communities.MostActive(ctx, defaultListLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.users.Recent(ctx, defaultListLimit)
	if err != nil {
		return nil, err
	}

	stats := &SiteStats{
		TotalUsers:            totalUsers,
		PopularMovies:         make([]models.MovieSummary, 0, len(popular)),
		MostReviewedMovies:    make([]models.MovieSummary, 0, len(mostReviewed)),
		MostActiveCommunities: make([]CommunityActivity, 0, len(active)),
		RecentSignups:         make([]RecentUser, 0, len(recent)),
	}
	for i := range popular {
		stats.PopularMovies = append(stats.PopularMovies, popular[i].Summary())
	}
	for i := range mostReviewed {
		stats.MostReviewedMovies = append(stats.MostReviewedMovies, mostReviewed[i].Summary())
	}
	for i := range active {
		stats.MostActiveCommunities = append(stats.MostActiveCommunities, CommunityActivity{
			ID:        active[i].ID.Hex(),
			Title:     active[i].Title,
			PostCount: len(active[i].Posts),
		})
	}
	for i := range recent {
		stats.RecentSignups = append(stats.RecentSignups, RecentUser{
			ID:    recent[i].ID.Hex(),
			Name:  recent[i].Name,
			Email: recent[i].Email,
		})
	}
	return stats, nil
}
