package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostByID(t *testing.T) {
	post := Post{ID: primitive.NewObjectID(), Text: "hola"}
	c := Community{Posts: []Post{post}}

	found := c.PostByID(post.ID)
	assert.NotNil(t, found)
	assert.Equal(t, "hola", found.Text)

	assert.Nil(t, c.PostByID(primitive.NewObjectID()))
}

func TestPostByIDReturnsPointerIntoArray(t *testing.T) {
	post := Post{ID: primitive.NewObjectID()}
	c := Community{Posts: []Post{post}}

	// el puntero apunta al elemento del array: mutar a través suyo
	// modifica el documento, que es como se agregan las replies
	c.PostByID(post.ID).Replies = append(c.PostByID(post.ID).Replies, Reply{
		ID:   primitive.NewObjectID(),
		Text: "una respuesta",
	})
	assert.Len(t, c.Posts[0].Replies, 1)
}
