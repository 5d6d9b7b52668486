package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/models"
)

// AuthorView is the populated author summary returned with a post.
type AuthorView struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Role     string             `json:"role"`
}

// CategoryView is the populated category summary returned with a post.
type CategoryView struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
	Slug string             `json:"slug"`
}

// CommentView is an embedded comment with its author's username resolved.
type CommentView struct {
	ID        primitive.ObjectID `json:"id"`
	User      primitive.ObjectID `json:"user"`
	Username  string             `json:"username,omitempty"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PostView is a post with its relations resolved, the shape every post read
// endpoint returns.
type PostView struct {
	ID            primitive.ObjectID `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Content       string             `json:"content,omitempty"`
	Excerpt       string             `json:"excerpt,omitempty"`
	FeaturedImage string             `json:"featuredImage,omitempty"`
	IsPublished   bool               `json:"isPublished"`
	Author        *AuthorView        `json:"author,omitempty"`
	Category      *CategoryView      `json:"category,omitempty"`
	Tags          []string           `json:"tags,omitempty"`
	Comments      []CommentView      `json:"comments"`
	Views         int64              `json:"views"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// populate resolves author, category and comment-user references for a batch
// of posts with one $in query per collection.
func (s *PostService) populate(ctx context.Context, posts []models.Post) ([]PostView, error) {
	userIDs := make([]primitive.ObjectID, 0, len(posts))
	categoryIDs := make([]primitive.ObjectID, 0, len(posts))
	for _, p := range posts {
		userIDs = append(userIDs, p.Author)
		for _, c := range p.Comments {
			userIDs = append(userIDs, c.User)
		}
		if !p.Category.IsZero() {
			categoryIDs = append(categoryIDs, p.Category)
		}
	}

	users, err := s.usersByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoriesByID(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		view := PostView{
			ID:            p.ID,
			Title:         p.Title,
			Slug:          p.Slug,
			Content:       p.Content,
			Excerpt:       p.Excerpt,
			FeaturedImage: p.FeaturedImage,
			IsPublished:   p.IsPublished,
			Tags:          p.Tags,
			Comments:      make([]CommentView, 0, len(p.Comments)),
			Views:         p.Views,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		}
		if author, ok := users[p.Author]; ok {
			view.Author = &AuthorView{ID: author.ID, Username: author.Username, Email: author.Email, Role: author.Role}
		}
		if category, ok := categories[p.Category]; ok {
			view.Category = &CategoryView{ID: category.ID, Name: category.Name, Slug: category.Slug}
		}
		for _, c := range p.Comments {
			comment := CommentView{ID: c.ID, User: c.User, Content: c.Content, CreatedAt: c.CreatedAt}
			if u, ok := users[c.User]; ok {
				comment.Username = u.Username
			}
			view.Comments = append(view.Comments, comment)
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *PostService) usersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	byID := map[primitive.ObjectID]models.User{}
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (s *PostService) categoriesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error) {
	byID := map[primitive.ObjectID]models.Category{}
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := s.categories.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID, nil
}
