package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Content       string             `bson:"content,omitempty" json:"content,omitempty"`
	Excerpt       string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	FeaturedImage string             `bson:"featured_image,omitempty" json:"featuredImage,omitempty"`
	IsPublished   bool               `bson:"is_published" json:"isPublished"`
	Author        primitive.ObjectID `bson:"author" json:"author"`
	Category      primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Comments      []Comment          `bson:"comments" json:"comments"`
	Views         int64              `bson:"views" json:"views"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Comment lives embedded in its post and is only ever appended.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
