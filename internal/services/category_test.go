package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDOrSlugFilter(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, bson.M{"_id": id}, idOrSlugFilter(id.Hex()))

	// Anything that does not parse as an ObjectID is treated as a slug.
	assert.Equal(t, bson.M{"slug": "hello-world"}, idOrSlugFilter("hello-world"))
	assert.Equal(t, bson.M{"slug": "123"}, idOrSlugFilter("123"))
}
