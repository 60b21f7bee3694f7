package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCommunityStore struct {
	communities map[primitive.ObjectID]*models.Community
}

func newFakeCommunityStore() *fakeCommunityStore {
	return &fakeCommunityStore{communities: map[primitive.ObjectID]*models.Community{}}
}

func (f *fakeCommunityStore) Insert(_ context.Context, c *models.Community) error {
	c.ID = primitive.NewObjectID()
	f.communities[c.ID] = c
	return nil
}

func (f *fakeCommunityStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Community, error) {
	c, ok := f.communities[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Posts = append([]models.Post(nil), c.Posts...)
	return &cp, nil
}

func (f *fakeCommunityStore) FindAll(_ context.Context, limit, offset int) ([]models.Community, error) {
	out := []models.Community{}
	for _, c := range f.communities {
		out = append(out, *c)
	}
	if offset > len(out) {
		return []models.Community{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCommunityStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.communities)), nil
}

func (f *fakeCommunityStore) Save(_ context.Context, c *models.Community) error {
	f.communities[c.ID] = c
	return nil
}

func TestCreateCommunityRequiresTitle(t *testing.T) {
	svc := NewCommunityService(newFakeCommunityStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), "  ", "desc")
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
}

func TestCreateCommunity(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)
	creator := primitive.NewObjectID()

	c, err := svc.Create(context.Background(), creator, "Cinéfilos", "todo cine")
	require.NoError(t, err)
	assert.False(t, c.ID.IsZero())
	assert.Equal(t, creator, c.CreatedBy)
	assert.NotNil(t, c.Posts)
	assert.Empty(t, c.Posts)
}

func TestCreatePostAppends(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)

	c, err := svc.Create(context.Background(), primitive.NewObjectID(), "Cinéfilos", "")
	require.NoError(t, err)

	p1, err := svc.CreatePost(context.Background(), c.ID, primitive.NewObjectID(), "primer post")
	require.NoError(t, err)
	p2, err := svc.CreatePost(context.Background(), c.ID, primitive.NewObjectID(), "segundo post")
	require.NoError(t, err)

	saved := store.communities[c.ID]
	require.Len(t, saved.Posts, 2)
	// append-only: el orden de llegada se preserva
	assert.Equal(t, p1.ID, saved.Posts[0].ID)
	assert.Equal(t, p2.ID, saved.Posts[1].ID)
	assert.False(t, p1.CreatedAt.IsZero())
}

func TestCreatePostCommunityNotFound(t *testing.T) {
	svc := NewCommunityService(newFakeCommunityStore())

	_, err := svc.CreatePost(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "texto")
	assert.Equal(t, http.StatusNotFound, apperr.CodeOf(err))
}

func TestReply(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)

	c, err := svc.Create(context.Background(), primitive.NewObjectID(), "Cinéfilos", "")
	require.NoError(t, err)
	post, err := svc.CreatePost(context.Background(), c.ID, primitive.NewObjectID(), "un post")
	require.NoError(t, err)

	updated, err := svc.Reply(context.Background(), c.ID, post.ID, primitive.NewObjectID(), "una respuesta")
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	assert.Equal(t, "una respuesta", updated.Replies[0].Text)

	saved := store.communities[c.ID]
	require.Len(t, saved.Posts[0].Replies, 1)
}

func TestReplyPostNotFound(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)

	c, err := svc.Create(context.Background(), primitive.NewObjectID(), "Cinéfilos", "")
	require.NoError(t, err)

	// la comunidad existe pero el post no: 404 igual
	_, err = svc.Reply(context.Background(), c.ID, primitive.NewObjectID(), primitive.NewObjectID(), "texto")
	assert.Equal(t, http.StatusNotFound, apperr.CodeOf(err))
}

func TestListPostsPagination(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)

	c, err := svc.Create(context.Background(), primitive.NewObjectID(), "Cinéfilos", "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := svc.CreatePost(context.Background(), c.ID, primitive.NewObjectID(), "post")
		require.NoError(t, err)
	}

	posts, total, err := svc.ListPosts(context.Background(), c.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, posts, 2)
}

func TestListRepliesPostNotFound(t *testing.T) {
	store := newFakeCommunityStore()
	svc := NewCommunityService(store)

	c, err := svc.Create(context.Background(), primitive.NewObjectID(), "Cinéfilos", "")
	require.NoError(t, err)

	_, err = svc.ListReplies(context.Background(), c.ID, primitive.NewObjectID())
	assert.Equal(t, http.StatusNotFound, apperr.CodeOf(err))
}
