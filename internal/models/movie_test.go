package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reviewWith(rating, likes int) Review {
	return Review{
		ID:     primitive.NewObjectID(),
		User:   primitive.NewObjectID(),
		Rating: rating,
		Likes:  likes,
	}
}

func TestRecalcAverageRatingEmpty(t *testing.T) {
	m := Movie{AverageRating: 4.2}
	m.RecalcAverageRating()
	assert.Equal(t, 0.0, m.AverageRating)
}

func TestRecalcAverageRating(t *testing.T) {
	m := Movie{Reviews: []Review{reviewWith(4, 0), reviewWith(3, 0), reviewWith(2, 0)}}
	m.RecalcAverageRating()
	assert.Equal(t, 3.0, m.AverageRating)

	m.Reviews = append(m.Reviews, reviewWith(5, 0))
	m.RecalcAverageRating()
	assert.Equal(t, 3.5, m.AverageRating)
}

func TestRemoveReviewAtRecalculates(t *testing.T) {
	m := Movie{Reviews: []Review{reviewWith(4, 0), reviewWith(2, 0)}}
	m.RecalcAverageRating()
	assert.Equal(t, 3.0, m.AverageRating)

	m.RemoveReviewAt(1)
	assert.Len(t, m.Reviews, 1)
	assert.Equal(t, 4.0, m.AverageRating)

	// al quedar sin reviews el promedio vuelve a 0, no queda el último valor
	m.RemoveReviewAt(0)
	assert.Empty(t, m.Reviews)
	assert.Equal(t, 0.0, m.AverageRating)
}

func TestReviewIndexByUser(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	m := Movie{Reviews: []Review{
		{ID: primitive.NewObjectID(), User: userA, Rating: 5},
		{ID: primitive.NewObjectID(), User: userB, Rating: 2},
	}}

	assert.Equal(t, 0, m.ReviewIndexByUser(userA))
	assert.Equal(t, 1, m.ReviewIndexByUser(userB))
	assert.Equal(t, -1, m.ReviewIndexByUser(primitive.NewObjectID()))
}

func TestReviewIndexByID(t *testing.T) {
	rv := reviewWith(3, 0)
	m := Movie{Reviews: []Review{rv}}

	assert.Equal(t, 0, m.ReviewIndexByID(rv.ID))
	assert.Equal(t, -1, m.ReviewIndexByID(primitive.NewObjectID()))
}

func TestTopReviewsOrdering(t *testing.T) {
	low := reviewWith(2, 100)
	midFewLikes := reviewWith(4, 1)
	midManyLikes := reviewWith(4, 50)
	high := reviewWith(5, 0)

	m := Movie{Reviews: []Review{low, midFewLikes, midManyLikes, high}}

	top := m.TopReviews(3)
	assert.Len(t, top, 3)
	assert.Equal(t, high.ID, top[0].ID)
	// a igual rating gana el de más likes
	assert.Equal(t, midManyLikes.ID, top[1].ID)
	assert.Equal(t, midFewLikes.ID, top[2].ID)

	// no muta el array original
	assert.Equal(t, low.ID, m.Reviews[0].ID)
}

func TestTopReviewsFewerThanN(t *testing.T) {
	m := Movie{Reviews: []Review{reviewWith(3, 0)}}
	assert.Len(t, m.TopReviews(5), 1)

	var empty Movie
	assert.Empty(t, empty.TopReviews(3))
}

func TestSummaryProjection(t *testing.T) {
	m := Movie{
		ID:            primitive.NewObjectID(),
		Title:         "Heat",
		Genre:         []string{"Crime", "Thriller"},
		Synopsis:      "no debería aparecer en el resumen",
		AverageRating: 4.5,
	}
	s := m.Summary()
	assert.Equal(t, m.ID, s.ID)
	assert.Equal(t, "Heat", s.Title)
	assert.Equal(t, 4.5, s.AverageRating)
}
