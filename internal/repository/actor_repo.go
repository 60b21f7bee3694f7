package repository

import (
	"context"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/db"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ActorRepository struct {
	col *mongo.Collection
}

func NewActorRepository() *ActorRepository {
	return &ActorRepository{col: db.DB().Collection("actors")}
}

func (r *ActorRepository) Insert(ctx context.Context, a *models.Actor) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ActorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Actor, error) {
	var a models.Actor
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &a, err
}

func (r *ActorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Actor
	for cur.Next(ctx) {
		var a models.Actor
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// FindByName: lookup exacto, lo usa el search de películas por actor.
func (r *ActorRepository) FindByName(ctx context.Context, name string) (*models.Actor, error) {
	var a models.Actor
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &a, err
}
