package repository

import (
	"context"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/db"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommunityRepository struct {
	col *mongo.Collection
}

func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{col: db.DB().Collection("communities")}
}

func (r *CommunityRepository) Insert(ctx context.Context, c *models.Community) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CommunityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Community, error) {
	var c models.Community
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}

// Save reemplaza el documento completo: agregar un post o una reply
// siempre viaja como una sola escritura del documento padre.
func (r *CommunityRepository) Save(ctx context.Context, c *models.Community) error {
	filter := bson.M{"_id": c.ID}
	if writeGuard {
		filter["version"] = c.Version
		c.Version++
	}

	res, err := r.col.ReplaceOne(ctx, filter, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if writeGuard {
			return ErrVersionConflict
		}
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindAll lista comunidades, las más recientes primero.
func (r *CommunityRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Community, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Community
	for cur.Next(ctx) {
		var c models.Community
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *CommunityRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// MostActive ordena por cantidad de posts embebidos (aggregate $size).
func (r *CommunityRepository) MostActive(ctx context.Context, limit int) ([]models.Community, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"postCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$posts", bson.A{}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "postCount", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Community
	for cur.Next(ctx) {
		var c models.Community
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}
