package repository

import (
	"context"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/db"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var m models.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.Movie) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

// Save persiste el documento completo con un ReplaceOne: esa es la unidad
// de atomicidad del modelo (reviews embebidos + averageRating derivado
// viajan juntos en la misma escritura). Con el write guard activo el
// filtro incluye la versión leída.
func (r *MovieRepository) Save(ctx context.Context, m *models.Movie) error {
	filter := bson.M{"_id": m.ID}
	if writeGuard {
		filter["version"] = m.Version
		m.Version++
	}

	res, err := r.col.ReplaceOne(ctx, filter, m)
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

// Delete borra la película. No hay limpieza referencial: wishlists,
// custom lists y filmografías que la apunten quedan con la referencia
// colgando (comportamiento documentado del sistema).
func (r *MovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// ListFilter son los filtros del listado general de películas.
type ListFilter struct {
	Genre       string
	MinRating   float64
	MaxRating   float64
	Director    primitive.ObjectID
	Cast        []primitive.ObjectID
	ReleaseYear int
}

func (f ListFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Genre != "" {
		// genre es un array, esto matchea que lo contenga
		filter["genre"] = f.Genre
	}
	if f.MinRating > 0 || f.MaxRating > 0 {
		cond := bson.M{}
		if f.MinRating > 0 {
			cond["$gte"] = f.MinRating
		}
		if f.MaxRating > 0 {
			cond["$lte"] = f.MaxRating
		}
		filter["averageRating"] = cond
	}
	if !f.Director.IsZero() {
		filter["director"] = f.Director
	}
	if len(f.Cast) > 0 {
		filter["cast"] = bson.M{"$in": f.Cast}
	}
	if f.ReleaseYear > 0 {
		from := time.Date(f.ReleaseYear, 1, 1, 0, 0, 0, 0, time.UTC)
		filter["releaseDate"] = bson.M{"$gte": from, "$lt": from.AddDate(1, 0, 0)}
	}
	return filter
}

func (r *MovieRepository) List(ctx context.Context, f ListFilter, limit, offset int) ([]models.Movie, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))
	return r.find(ctx, f.toBSON(), opts)
}

func (r *MovieRepository) CountList(ctx context.Context, f ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, f.toBSON())
}

// SearchFilter son los criterios del search (regex case-insensitive para
// texto, ids resueltos por nombre en el service).
type SearchFilter struct {
	Title    string
	Genre    string
	Director primitive.ObjectID
	Actor    primitive.ObjectID
}

func (r *MovieRepository) Search(ctx context.Context, f SearchFilter, limit int) ([]models.Movie, error) {
	filter := bson.M{}
	if f.Title != "" {
		filter["title"] = bson.M{"$regex": f.Title, "$options": "i"}
	}
	if f.Genre != "" {
		filter["genre"] = bson.M{"$regex": f.Genre, "$options": "i"}
	}
	if !f.Director.IsZero() {
		filter["director"] = f.Director
	}
	if !f.Actor.IsZero() {
		filter["cast"] = bson.M{"$in": []primitive.ObjectID{f.Actor}}
	}
	return r.find(ctx, filter, options.Find().SetLimit(int64(limit)))
}

// AdvancedFilter filtra por década ("1990" cubre 1990..1999) y ageRating.
func (r *MovieRepository) AdvancedFilter(ctx context.Context, decade int, ageRating string, limit int) ([]models.Movie, error) {
	filter := bson.M{}
	if decade > 0 {
		from := time.Date(decade, 1, 1, 0, 0, 0, 0, time.UTC)
		filter["releaseDate"] = bson.M{"$gte": from, "$lt": from.AddDate(10, 0, 0)}
	}
	if ageRating != "" {
		filter["ageRating"] = bson.M{"$regex": ageRating, "$options": "i"}
	}
	return r.find(ctx, filter, options.Find().SetLimit(int64(limit)))
}

// Trending: películas con promedio mayor al umbral.
func (r *MovieRepository) Trending(ctx context.Context, minAvg float64, limit int) ([]models.Movie, error) {
	return r.find(ctx,
		bson.M{"averageRating": bson.M{"$gt": minAvg}},
		options.Find().SetLimit(int64(limit)),
	)
}

// TopRated ordena por averageRating desc, con ventana opcional de fechas.
func (r *MovieRepository) TopRated(ctx context.Context, from, to time.Time, limit int) ([]models.Movie, error) {
	filter := bson.M{}
	if !from.IsZero() && !to.IsZero() {
		filter["releaseDate"] = bson.M{"$gte": from, "$lte": to}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

func (r *MovieRepository) TopByGenre(ctx context.Context, genre string, limit int) ([]models.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"genre": bson.M{"$in": []string{genre}}}, opts)
}

// ByGenres alimenta las recomendaciones: películas de los géneros
// favoritos del usuario ordenadas por promedio.
func (r *MovieRepository) ByGenres(ctx context.Context, genres []string, limit int) ([]models.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"genre": bson.M{"$in": genres}}, opts)
}

// Similar: mismo género o mismo director, excluyendo la propia película.
func (r *MovieRepository) Similar(ctx context.Context, m *models.Movie, limit int) ([]models.Movie, error) {
	or := []bson.M{{"genre": bson.M{"$in": m.Genre}}}
	if !m.Director.IsZero() {
		or = append(or, bson.M{"director": m.Director})
	}
	filter := bson.M{
		"_id": bson.M{"$ne": m.ID},
		"$or": or,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// ReleasedBetween se usa para el top del mes.
func (r *MovieRepository) ReleasedBetween(ctx context.Context, from, to time.Time, limit int) ([]models.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "averageRating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"releaseDate": bson.M{"$gte": from, "$lt": to}}, opts)
}

// Upcoming: estrenos futuros, el más próximo primero.
func (r *MovieRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "releaseDate", Value: 1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"releaseDate": bson.M{"$gte": now}}, opts)
}

// MostReviewed ordena por cantidad de reviews embebidos ($size vía
// aggregate, find no puede ordenar por longitud de array).
func (r *MovieRepository) MostReviewed(ctx context.Context, limit int) ([]models.Movie, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"reviewCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$reviews", bson.A{}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "reviewCount", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Movie
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MovieRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Movie, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Movie
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
