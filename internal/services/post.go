package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/auth"
	"blog-backend/internal/httperr"
	"blog-backend/internal/models"
	"blog-backend/internal/slug"
)

// PostService owns the post lifecycle: listing with filters, id-or-slug
// lookup with view counting, ownership-checked mutation and comment append.
type PostService struct {
	posts      *mongo.Collection
	users      *mongo.Collection
	categories *CategoryService
}

func NewPostService(database *mongo.Database, categories *CategoryService) *PostService {
	return &PostService{
		posts:      database.Collection("posts"),
		users:      database.Collection("users"),
		categories: categories,
	}
}

// ListParams are the query knobs for listing posts.
type ListParams struct {
	Page      int64
	Limit     int64
	Category  string
	Search    string
	Published *bool
}

// buildPostFilter translates list parameters into a Mongo filter. Search is a
// case-insensitive substring match over title and content.
func buildPostFilter(p ListParams) bson.M {
	filter := bson.M{}
	if p.Category != "" {
		if objID, err := primitive.ObjectIDFromHex(p.Category); err == nil {
			filter["category"] = objID
		} else {
			filter["category"] = p.Category
		}
	}
	if p.Published != nil {
		filter["is_published"] = *p.Published
	}
	if p.Search != "" {
		pattern := regexp.QuoteMeta(p.Search)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// pageCount is ceil(total/limit).
func pageCount(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// PostList is one page of posts plus the pagination bookkeeping the client
// renders.
type PostList struct {
	Items       []PostView
	Count       int64
	Total       int64
	Pages       int64
	CurrentPage int64
}

// List returns published-state/category/search filtered posts, newest first.
func (s *PostService) List(ctx context.Context, params ListParams) (*PostList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	filter := buildPostFilter(params)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((params.Page - 1) * params.Limit).
		SetLimit(params.Limit)

	cursor, err := s.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	total, err := s.posts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, err := s.populate(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &PostList{
		Items:       views,
		Count:       int64(len(views)),
		Total:       total,
		Pages:       pageCount(total, params.Limit),
		CurrentPage: params.Page,
	}, nil
}

// Get resolves a post by ObjectID or slug. A hit bumps the view counter as a
// best-effort side effect; a failed bump never fails the request.
func (s *PostService) Get(ctx context.Context, idOrSlug string) (*PostView, error) {
	var post models.Post
	if err := s.posts.FindOne(ctx, idOrSlugFilter(idOrSlug)).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("post not found")
		}
		return nil, err
	}

	if _, err := s.posts.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		log.Debug().Err(err).Str("post", post.ID.Hex()).Msg("view count increment failed")
	} else {
		post.Views++
	}

	views, err := s.populate(ctx, []models.Post{post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// CreatePostInput carries the fields a caller may set on a new post.
type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	Category      string
	Tags          []string
	IsPublished   bool
}

// Create inserts a post owned by the caller. The slug is derived from the
// title; a duplicate title therefore collides on the slug index.
func (s *PostService) Create(ctx context.Context, caller auth.Identity, input CreatePostInput) (*models.Post, error) {
	author, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		return nil, httperr.Unauthorized("invalid token payload")
	}

	now := time.Now()
	post := &models.Post{
		ID:            primitive.NewObjectID(),
		Title:         input.Title,
		Slug:          slug.Make(input.Title),
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		IsPublished:   input.IsPublished,
		Author:        author,
		Tags:          input.Tags,
		Comments:      []models.Comment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(input.Category)
		if err != nil {
			return nil, httperr.BadRequest("invalid category id")
		}
		post.Category = categoryID
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("post with this title already exists")
		}
		return nil, err
	}
	return post, nil
}

// UpdatePostInput carries the editable post fields; nil means unchanged.
type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	Category      *string
	Tags          []string
	IsPublished   *bool
}

// Update mutates a post after checking the ownership rule against the stored
// author. A supplied category is verified to exist before it is referenced.
func (s *PostService) Update(ctx context.Context, caller auth.Identity, idOrSlug string, input UpdatePostInput) (*PostView, error) {
	var post models.Post
	if err := s.posts.FindOne(ctx, idOrSlugFilter(idOrSlug)).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("post not found")
		}
		return nil, err
	}

	if !caller.CanModify(post.Author.Hex()) {
		return nil, httperr.Forbidden("not authorized to update this post")
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
		set["slug"] = slug.Make(*input.Title)
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Excerpt != nil {
		set["excerpt"] = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		set["featured_image"] = *input.FeaturedImage
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.IsPublished != nil {
		set["is_published"] = *input.IsPublished
	}
	if input.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*input.Category)
		if err != nil {
			return nil, httperr.BadRequest("invalid category id")
		}
		exists, err := s.categories.Exists(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, httperr.BadRequest("category not found")
		}
		set["category"] = categoryID
	}

	if _, err := s.posts.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": set}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("post with this title already exists")
		}
		return nil, err
	}

	var updated models.Post
	if err := s.posts.FindOne(ctx, bson.M{"_id": post.ID}).Decode(&updated); err != nil {
		return nil, err
	}
	views, err := s.populate(ctx, []models.Post{updated})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Delete removes a post (and with it the embedded comments) after the same
// ownership check as Update.
func (s *PostService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httperr.BadRequest("invalid post id")
	}

	var post models.Post
	if err := s.posts.FindOne(ctx, bson.M{"_id": objID}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return httperr.NotFound("post not found")
		}
		return err
	}

	if !caller.CanModify(post.Author.Hex()) {
		return httperr.Forbidden("not authorized to delete this post")
	}

	_, err = s.posts.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// AddComment appends a comment with the caller's identity attached. The
// $push keeps concurrent appends from clobbering each other; order is append
// order.
func (s *PostService) AddComment(ctx context.Context, caller auth.Identity, postID, content string) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return httperr.BadRequest("invalid post id")
	}
	userID, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		return httperr.Unauthorized("invalid token payload")
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	result, err := s.posts.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return httperr.NotFound("post not found")
	}
	return nil
}
