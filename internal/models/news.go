package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News es una entidad plana sin relaciones con el resto del catálogo.
type News struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"`
	Author        string             `json:"author" bson:"author"`
	PublishedDate time.Time          `json:"publishedDate" bson:"publishedDate"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
