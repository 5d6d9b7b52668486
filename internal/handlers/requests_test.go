package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "Str0ng!pass"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.com", Password: "Str0ng!pass"}},
		{"username too short", RegisterRequest{Username: "ab", Email: "a@b.com", Password: "Str0ng!pass"}},
		{"username too long", RegisterRequest{Username: "abcdefghijk", Email: "a@b.com", Password: "Str0ng!pass"}},
		{"bad email", RegisterRequest{Username: "alice", Email: "not-an-email", Password: "Str0ng!pass"}},
		{"password too short", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "S1!a"}},
		{"password no digit", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "Strong!pass"}},
		{"password no symbol", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "Str0ngpass"}},
		{"password no upper", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "str0ng!pass"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "a@b.com", Password: "whatever"}.Validate())
	assert.Error(t, LoginRequest{Email: "a@b.com"}.Validate())
	assert.Error(t, LoginRequest{Password: "whatever"}.Validate())
}

func TestCreatePostRequestValidate(t *testing.T) {
	valid := CreatePostRequest{Title: "Hello", Content: "body", Category: "64f1b2c3d4e5f60718293a4b"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, CreatePostRequest{Content: "body", Category: "c"}.Validate(), "title required")
	assert.Error(t, CreatePostRequest{Title: "Hello", Category: "c"}.Validate(), "content required")
	assert.Error(t, CreatePostRequest{Title: "Hello", Content: "body"}.Validate(), "category required")
	assert.Error(t, CreatePostRequest{
		Title: strings.Repeat("x", 101), Content: "body", Category: "c",
	}.Validate(), "title too long")
}

func TestUpdatePostRequestValidate(t *testing.T) {
	assert.NoError(t, UpdatePostRequest{}.Validate(), "all fields optional")
	assert.NoError(t, UpdatePostRequest{Title: strPtr("New title")}.Validate())
	assert.Error(t, UpdatePostRequest{Title: strPtr(strings.Repeat("x", 101))}.Validate())
	assert.Error(t, UpdatePostRequest{Excerpt: strPtr(strings.Repeat("x", 201))}.Validate())
}

func TestCategoryRequestValidate(t *testing.T) {
	assert.NoError(t, CategoryRequest{Name: "Tech"}.Validate())
	assert.Error(t, CategoryRequest{}.Validate(), "name required")
	assert.Error(t, CategoryRequest{Name: strings.Repeat("x", 51)}.Validate())
	assert.Error(t, CategoryRequest{Name: "Tech", Description: strings.Repeat("x", 201)}.Validate())
}

func TestCommentRequestValidate(t *testing.T) {
	assert.NoError(t, CommentRequest{Content: "nice post"}.Validate())
	assert.Error(t, CommentRequest{}.Validate())
}
