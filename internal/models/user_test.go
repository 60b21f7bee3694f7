package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	movieID := primitive.NewObjectID()
	u := User{}

	assert.True(t, u.AddToWishlist(movieID))
	assert.Len(t, u.Wishlist, 1)

	// el segundo agregado no duplica
	assert.False(t, u.AddToWishlist(movieID))
	assert.Len(t, u.Wishlist, 1)
}

func TestWishlistRemove(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	u := User{Wishlist: []primitive.ObjectID{a, b}}

	assert.True(t, u.RemoveFromWishlist(a))
	assert.Equal(t, []primitive.ObjectID{b}, u.Wishlist)

	// sacar algo que no está no es error, solo devuelve false
	assert.False(t, u.RemoveFromWishlist(a))
	assert.Len(t, u.Wishlist, 1)
}

func TestWishlistAddRemoveAddScenario(t *testing.T) {
	movieID := primitive.NewObjectID()
	u := User{}

	assert.True(t, u.AddToWishlist(movieID))
	assert.False(t, u.AddToWishlist(movieID))
	assert.True(t, u.RemoveFromWishlist(movieID))
	assert.True(t, u.AddToWishlist(movieID))
	assert.Len(t, u.Wishlist, 1)
}

func TestHasCustomListExactMatch(t *testing.T) {
	u := User{CustomLists: []CustomList{{ID: primitive.NewObjectID(), Title: "Favoritas"}}}

	assert.True(t, u.HasCustomList("Favoritas"))
	// la comparación es byte a byte, sin normalizar
	assert.False(t, u.HasCustomList("favoritas"))
	assert.False(t, u.HasCustomList("Favoritas "))
}

func TestAddNotification(t *testing.T) {
	u := User{}
	u.AddNotification("Upcoming movie: Dune releases on 2026-10-01")

	assert.Len(t, u.Notifications, 1)
	n := u.Notifications[0]
	assert.False(t, n.ID.IsZero())
	assert.False(t, n.Read)
	assert.False(t, n.Date.IsZero())
	assert.Contains(t, n.Message, "Dune")
}
