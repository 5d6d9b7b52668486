package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildPostFilterEmpty(t *testing.T) {
	filter := buildPostFilter(ListParams{})
	assert.Empty(t, filter, "no params means no constraints: all posts")
}

func TestBuildPostFilterPublished(t *testing.T) {
	filter := buildPostFilter(ListParams{Published: boolPtr(true)})
	assert.Equal(t, bson.M{"is_published": true}, filter)

	filter = buildPostFilter(ListParams{Published: boolPtr(false)})
	assert.Equal(t, bson.M{"is_published": false}, filter)
}

func TestBuildPostFilterCategory(t *testing.T) {
	id := primitive.NewObjectID()
	filter := buildPostFilter(ListParams{Category: id.Hex()})
	assert.Equal(t, id, filter["category"])
}

func TestBuildPostFilterSearch(t *testing.T) {
	filter := buildPostFilter(ListParams{Search: "hello"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"title": bson.M{"$regex": "hello", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"content": bson.M{"$regex": "hello", "$options": "i"}}, or[1])
}

func TestBuildPostFilterSearchQuotesMeta(t *testing.T) {
	filter := buildPostFilter(ListParams{Search: "c++ (draft)"})

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(bson.M)
	assert.Equal(t, `c\+\+ \(draft\)`, title["$regex"], "search is a substring match, not a user-supplied regex")
}

func TestBuildPostFilterCombined(t *testing.T) {
	id := primitive.NewObjectID()
	filter := buildPostFilter(ListParams{Category: id.Hex(), Published: boolPtr(true), Search: "go"})

	assert.Len(t, filter, 3)
	assert.Equal(t, id, filter["category"])
	assert.Equal(t, true, filter["is_published"])
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pageCount(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
