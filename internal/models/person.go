package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor y Director comparten la misma forma (colecciones actors y
// directors). Filmography son referencias débiles a movies: borrar una
// película NO limpia las filmografías, la referencia queda colgando.
type Actor struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Biography   string               `json:"biography,omitempty" bson:"biography,omitempty"`
	Filmography []primitive.ObjectID `json:"filmography,omitempty" bson:"filmography,omitempty"`
	Awards      []Award              `json:"awards,omitempty" bson:"awards,omitempty"`
	Photos      []string             `json:"photos,omitempty" bson:"photos,omitempty"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type Director struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Biography   string               `json:"biography,omitempty" bson:"biography,omitempty"`
	Filmography []primitive.ObjectID `json:"filmography,omitempty" bson:"filmography,omitempty"`
	Awards      []Award              `json:"awards,omitempty" bson:"awards,omitempty"`
	Photos      []string             `json:"photos,omitempty" bson:"photos,omitempty"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}
