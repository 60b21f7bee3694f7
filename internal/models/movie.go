package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review es un sub-documento embebido en Movie. Un usuario tiene como
// máximo un review por película.
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Rating     int                `json:"rating" bson:"rating"` // 1..5
	ReviewText string             `json:"reviewText" bson:"reviewText"`
	Likes      int                `json:"likes" bson:"likes"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type Award struct {
	AwardName string `json:"awardName" bson:"awardName"`
	Year      int    `json:"year" bson:"year"`
	Result    string `json:"result" bson:"result"` // "Won" | "Nominated"
}

type BoxOffice struct {
	OpeningWeekend       float64 `json:"openingWeekend,omitempty" bson:"openingWeekend,omitempty"`
	TotalEarnings        float64 `json:"totalEarnings,omitempty" bson:"totalEarnings,omitempty"`
	InternationalRevenue float64 `json:"internationalRevenue,omitempty" bson:"internationalRevenue,omitempty"`
}

// Movie es el documento de la colección movies. Los reviews viven
// embebidos dentro del documento: cada mutación de reviews se persiste
// con un ReplaceOne del documento completo (esa es la unidad de
// consistencia, no hay transacciones multi-documento).
type Movie struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title            string               `json:"title" bson:"title"`
	Genre            []string             `json:"genre" bson:"genre"`
	Director         primitive.ObjectID   `json:"director,omitempty" bson:"director,omitempty"`
	Cast             []primitive.ObjectID `json:"cast,omitempty" bson:"cast,omitempty"`
	ReleaseDate      time.Time            `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Runtime          int                  `json:"runtime,omitempty" bson:"runtime,omitempty"` // minutos
	Synopsis         string               `json:"synopsis,omitempty" bson:"synopsis,omitempty"`
	CoverPhoto       string               `json:"coverPhoto,omitempty" bson:"coverPhoto,omitempty"`
	Trivia           []string             `json:"trivia,omitempty" bson:"trivia,omitempty"`
	Goofs            []string             `json:"goofs,omitempty" bson:"goofs,omitempty"`
	SoundtrackInfo   []string             `json:"soundtrackInfo,omitempty" bson:"soundtrackInfo,omitempty"`
	AgeRating        string               `json:"ageRating,omitempty" bson:"ageRating,omitempty"`
	ParentalGuidance string               `json:"parentalGuidance,omitempty" bson:"parentalGuidance,omitempty"`
	Reviews          []Review             `json:"reviews" bson:"reviews"`
	// AverageRating es un campo derivado: siempre igual al promedio de
	// Reviews[].Rating (0 si no hay reviews). Nunca se acepta del cliente.
	AverageRating float64   `json:"averageRating" bson:"averageRating"`
	BoxOffice     BoxOffice `json:"boxOffice,omitempty" bson:"boxOffice,omitempty"`
	Awards        []Award   `json:"awards,omitempty" bson:"awards,omitempty"`
	Version       int64     `json:"-" bson:"version"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ReviewIndexByUser devuelve el índice del review de un usuario, -1 si no tiene.
func (m *Movie) ReviewIndexByUser(userID primitive.ObjectID) int {
	for i := range m.Reviews {
		if m.Reviews[i].User == userID {
			return i
		}
	}
	return -1
}

// ReviewIndexByID busca un review por su _id de sub-documento, -1 si no existe.
func (m *Movie) ReviewIndexByID(reviewID primitive.ObjectID) int {
	for i := range m.Reviews {
		if m.Reviews[i].ID == reviewID {
			return i
		}
	}
	return -1
}

// RecalcAverageRating recalcula AverageRating desde cero a partir del
// array de reviews. Se llama dentro de toda mutación (add/update/delete)
// antes de guardar el documento, nunca se mantiene incrementalmente.
func (m *Movie) RecalcAverageRating() {
	if len(m.Reviews) == 0 {
		m.AverageRating = 0
		return
	}
	total := 0
	for i := range m.Reviews {
		total += m.Reviews[i].Rating
	}
	m.AverageRating = float64(total) / float64(len(m.Reviews))
}

// RemoveReviewAt saca el review en el índice dado y recalcula el promedio.
func (m *Movie) RemoveReviewAt(i int) {
	m.Reviews = append(m.Reviews[:i], m.Reviews[i+1:]...)
	m.RecalcAverageRating()
}

// TopReviews devuelve los n reviews mejor puntuados, desempatando por likes.
// No muta el array original.
func (m *Movie) TopReviews(n int) []Review {
	out := make([]Review, len(m.Reviews))
	copy(out, m.Reviews)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating == out[j].Rating {
			return out[i].Likes > out[j].Likes
		}
		return out[i].Rating > out[j].Rating
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// MovieSummary es la proyección que se devuelve en listados, wishlist y
// custom lists.
type MovieSummary struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Genre         []string           `json:"genre" bson:"genre"`
	Director      primitive.ObjectID `json:"director,omitempty" bson:"director,omitempty"`
	ReleaseDate   time.Time          `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	CoverPhoto    string             `json:"coverPhoto,omitempty" bson:"coverPhoto,omitempty"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
}

func (m *Movie) Summary() MovieSummary {
	return MovieSummary{
		ID:            m.ID,
		Title:         m.Title,
		Genre:         m.Genre,
		Director:      m.Director,
		ReleaseDate:   m.ReleaseDate,
		CoverPhoto:    m.CoverPhoto,
		AverageRating: m.AverageRating,
	}
}
