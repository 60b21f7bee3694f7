package repository

import (
	"context"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/db"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DirectorRepository struct {
	col *mongo.Collection
}

func NewDirectorRepository() *DirectorRepository {
	return &DirectorRepository{col: db.DB().Collection("directors")}
}

func (r *DirectorRepository) Insert(ctx context.Context, d *models.Director) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DirectorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Director, error) {
	var d models.Director
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}

func (r *DirectorRepository) FindByName(ctx context.Context, name string) (*models.Director, error) {
	var d models.Director
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}
