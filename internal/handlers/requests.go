package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-backend/internal/auth"
)

// Request bodies are schema-validated here before any business logic runs.

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 10)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128), validation.By(auth.PasswordComplexity)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Length(3, 10)),
		validation.Field(&r.Email, is.Email),
	)
}

type CreatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	IsPublished   bool     `json:"isPublished"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("post title is required"), validation.Length(0, 100)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Excerpt, validation.Length(0, 200)),
		validation.Field(&r.Category, validation.Required),
	)
}

type UpdatePostRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	FeaturedImage *string  `json:"featuredImage"`
	Excerpt       *string  `json:"excerpt"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	IsPublished   *bool    `json:"isPublished"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 100)),
		validation.Field(&r.Excerpt, validation.Length(0, 200)),
	)
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(0, 50)),
		validation.Field(&r.Description, validation.Length(0, 200)),
	)
}

type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required.Error("comment content is required")),
	)
}
