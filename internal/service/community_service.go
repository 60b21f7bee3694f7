package service

import (
	"context"
	"strings"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type communityStore interface {
	Insert(ctx context.Context, c *models.Community) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Community, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Community, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, c *models.Community) error
}

type CommunityService struct {
	communities communityStore
}

func NewCommunityService(c communityStore) *CommunityService {
	return &CommunityService{communities: c}
}

func (s *CommunityService) Create(ctx context.Context, createdBy primitive.ObjectID, title, description string) (*models.Community, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.BadRequest("title is required")
	}

	now := time.Now().UTC()
	community := &models.Community{
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		Posts:       []models.Post{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.communities.Insert(ctx, community); err != nil {
		return nil, err
	}
	return community, nil
}

func (s *CommunityService) List(ctx context.Context, page, limit int) ([]models.Community, int64, error) {
	page, limit = normalizePage(page, limit)

	list, err := s.communities.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.communities.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *CommunityService) Get(ctx context.Context, id primitive.ObjectID) (*models.Community, error) {
	community, err := s.communities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, apperr.NotFound("community not found")
	}
	return community, nil
}

// CreatePost agrega un post al tablero. Los posts son append-only: no
// existe edición ni borrado.
func (s *CommunityService) CreatePost(ctx context.Context, communityID, userID primitive.ObjectID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.BadRequest("post text is required")
	}

	community, err := s.Get(ctx, communityID)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Replies:   []models.Reply{},
	}
	community.Posts = append(community.Posts, post)
	community.UpdatedAt = time.Now().UTC()

	if err := s.communities.Save(ctx, community); err != nil {
		return nil, saveErr(err)
	}
	return &post, nil
}

func (s *CommunityService) ListPosts(ctx context.Context, communityID primitive.ObjectID, page, limit int) ([]models.Post, int, error) {
	community, err := s.Get(ctx, communityID)
	if err != nil {
		return nil, 0, err
	}

	start, end := pageBounds(page, limit, len(community.Posts))
	return community.Posts[start:end], len(community.Posts), nil
}

// Reply agrega una respuesta a un post, identificado por su _id de
// sub-documento dentro del array de la comunidad. 404 si la comunidad o
// el post no existen (aunque la comunidad sí exista).
func (s *CommunityService) Reply(ctx context.Context, communityID, postID, userID primitive.ObjectID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.BadRequest("reply text is required")
	}

	community, err := s.Get(ctx, communityID)
	if err != nil {
		return nil, err
	}

	post := community.PostByID(postID)
	if post == nil {
		return nil, apperr.NotFound("post not found")
	}

	post.Replies = append(post.Replies, models.Reply{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	community.UpdatedAt = time.Now().UTC()

	if err := s.communities.Save(ctx, community); err != nil {
		return nil, saveErr(err)
	}
	return post, nil
}

func (s *CommunityService) ListReplies(ctx context.Context, communityID, postID primitive.ObjectID) ([]models.Reply, error) {
	community, err := s.Get(ctx, communityID)
	if err != nil {
		return nil, err
	}

	post := community.PostByID(postID)
	if post == nil {
		return nil, apperr.NotFound("post not found")
	}
	return post.Replies, nil
}
