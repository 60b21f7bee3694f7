package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleNormal = "normal"
	RoleAdmin  = "admin"
)

type Preferences struct {
	FavoriteGenres []string             `json:"favoriteGenres,omitempty" bson:"favoriteGenres,omitempty"`
	FavoriteActors []primitive.ObjectID `json:"favoriteActors,omitempty" bson:"favoriteActors,omitempty"`
}

// CustomList es una lista de películas con nombre, embebida en User.
// El título es único dentro del usuario (no globalmente).
type CustomList struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Movies      []primitive.ObjectID `json:"movies" bson:"movies"`
}

type Notification struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Message string             `json:"message" bson:"message"`
	Date    time.Time          `json:"date" bson:"date"`
	Read    bool               `json:"read" bson:"read"`
}

// User es el documento de la colección users. Wishlist, custom lists y
// notificaciones viven embebidas y se guardan con el documento completo.
type User struct {
	ID                   primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name                 string               `json:"name" bson:"name"`
	Email                string               `json:"email" bson:"email"`
	PasswordHash         string               `json:"-" bson:"passwordHash"`
	Role                 string               `json:"role" bson:"role"` // normal | admin
	Avatar               string               `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Preferences          Preferences          `json:"preferences" bson:"preferences"`
	Wishlist             []primitive.ObjectID `json:"wishlist" bson:"wishlist"`
	CustomLists          []CustomList         `json:"customLists" bson:"customLists"`
	NotificationsEnabled bool                 `json:"notificationsEnabled" bson:"notificationsEnabled"`
	Notifications        []Notification       `json:"notifications" bson:"notifications"`
	Version              int64                `json:"-" bson:"version"`
	CreatedAt            time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// InWishlist indica si la película ya está en la wishlist.
func (u *User) InWishlist(movieID primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == movieID {
			return true
		}
	}
	return false
}

// AddToWishlist agrega la película al final de la wishlist. Si ya estaba
// no hace nada y devuelve false (la wishlist nunca tiene duplicados).
func (u *User) AddToWishlist(movieID primitive.ObjectID) bool {
	if u.InWishlist(movieID) {
		return false
	}
	u.Wishlist = append(u.Wishlist, movieID)
	return true
}

// RemoveFromWishlist saca la película por valor. Devuelve false si no estaba.
func (u *User) RemoveFromWishlist(movieID primitive.ObjectID) bool {
	for i, id := range u.Wishlist {
		if id == movieID {
			u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
			return true
		}
	}
	return false
}

// HasCustomList compara títulos byte a byte (sin normalizar).
func (u *User) HasCustomList(title string) bool {
	for i := range u.CustomLists {
		if u.CustomLists[i].Title == title {
			return true
		}
	}
	return false
}

// AddNotification agrega una notificación no leída con fecha del servidor.
func (u *User) AddNotification(message string) {
	u.Notifications = append(u.Notifications, Notification{
		ID:      primitive.NewObjectID(),
		Message: message,
		Date:    time.Now().UTC(),
		Read:    false,
	})
}
