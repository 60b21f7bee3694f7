package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reply es un sub-documento dentro de Post. Posts y replies son
// append-only: no existe edición ni borrado en este diseño.
type Reply struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Replies   []Reply            `json:"replies" bson:"replies"`
}

// Community es el documento de la colección communities; los posts (y sus
// replies) viven embebidos y se guardan con el documento completo.
type Community struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Posts       []Post             `json:"posts" bson:"posts"`
	Version     int64              `json:"-" bson:"version"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PostByID busca un post por su _id de sub-documento dentro del array.
// Devuelve nil si no existe (equivalente a posts.id(postId) de mongoose).
func (c *Community) PostByID(postID primitive.ObjectID) *Post {
	for i := range c.Posts {
		if c.Posts[i].ID == postID {
			return &c.Posts[i]
		}
	}
	return nil
}
