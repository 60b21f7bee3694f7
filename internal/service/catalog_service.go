package service

import (
	"context"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService administra actores y directores (altas de admin y
// consultas públicas de perfil).
type CatalogService struct {
	actors    *repository.ActorRepository
	directors *repository.DirectorRepository
	movies    *repository.MovieRepository
}

func NewCatalogService(
	actors *repository.ActorRepository,
	directors *repository.DirectorRepository,
	movies *repository.MovieRepository,
) *CatalogService {
	return &CatalogService{actors: actors, directors: directors, movies: movies}
}

type PersonData struct {
	Name        string
	Biography   string
	Filmography []primitive.ObjectID
	Awards      []models.Award
	Photos      []string
}

func (s *CatalogService) AddActor(ctx context.Context, data PersonData) (*models.Actor, error) {
	if data.Name == "" {
		return nil, apperr.BadRequest("actor name is required")
	}
	a := &models.Actor{
		Name:        data.Name,
		Biography:   data.Biography,
		Filmography: data.Filmography,
		Awards:      data.Awards,
		Photos:      data.Photos,
	}
	if err := s.actors.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CatalogService) AddDirector(ctx context.Context, data PersonData) (*models.Director, error) {
	if data.Name == "" {
		return nil, apperr.BadRequest("director name is required")
	}
	d := &models.Director{
		Name:        data.Name,
		Biography:   data.Biography,
		Filmography: data.Filmography,
		Awards:      data.Awards,
		Photos:      data.Photos,
	}
	if err := s.directors.Insert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ActorProfile devuelve el actor con su filmografía resuelta. Las
// referencias a películas borradas se saltean.
type ActorProfile struct {
	models.Actor
	FilmographyDetails []models.MovieSummary `json:"filmographyDetails"`
}

func (s *CatalogService) GetActor(ctx context.Context, id primitive.ObjectID) (*ActorProfile, error) {
	a, err := s.actors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("actor not found")
	}

	profile := &ActorProfile{Actor: *a, FilmographyDetails: []models.MovieSummary{}}
	if len(a.Filmography) > 0 {
		movies, err := s.movies.FindByIDs(ctx, a.Filmography)
		if err != nil {
			return nil, err
		}
		for i := range movies {
			profile.FilmographyDetails = append(profile.FilmographyDetails, movies[i].Summary())
		}
	}
	return profile, nil
}

type DirectorProfile struct {
	models.Director
	FilmographyDetails []models.MovieSummary `json:"filmographyDetails"`
}

func (s *CatalogService) GetDirector(ctx context.Context, id primitive.ObjectID) (*DirectorProfile, error) {
	d, err := s.directors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("director not found")
	}

	profile := &DirectorProfile{Director: *d, FilmographyDetails: []models.MovieSummary{}}
	if len(d.Filmography) > 0 {
		movies, err := s.movies.FindByIDs(ctx, d.Filmography)
		if err != nil {
			return nil, err
		}
		for i := range movies {
			profile.FilmographyDetails = append(profile.FilmographyDetails, movies[i].Summary())
		}
	}
	return profile, nil
}
