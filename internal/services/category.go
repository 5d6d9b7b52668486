package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-backend/internal/httperr"
	"blog-backend/internal/models"
	"blog-backend/internal/slug"
)

// CategoryService handles the taxonomy. Reads are public; writes are gated
// to admins at the route level.
type CategoryService struct {
	categories *mongo.Collection
}

func NewCategoryService(database *mongo.Database) *CategoryService {
	return &CategoryService{categories: database.Collection("categories")}
}

// idOrSlugFilter matches by ObjectID when the identifier parses as one,
// otherwise by slug. Shared lookup rule for categories and posts.
func idOrSlugFilter(idOrSlug string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		return bson.M{"_id": objID}
	}
	return bson.M{"slug": idOrSlug}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, idOrSlug string) (*models.Category, error) {
	var category models.Category
	if err := s.categories.FindOne(ctx, idOrSlugFilter(idOrSlug)).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("category not found")
		}
		return nil, err
	}
	return &category, nil
}

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// Create inserts a category with a server-derived slug.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	now := time.Now()
	category := &models.Category{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if _, err := s.categories.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

// Update applies the input and recomputes the slug from the new name.
func (s *CategoryService) Update(ctx context.Context, idOrSlug string, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"name":        input.Name,
		"slug":        slug.Make(input.Name),
		"description": input.Description,
		"updated_at":  time.Now(),
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}

	if _, err := s.categories.UpdateOne(ctx, bson.M{"_id": category.ID}, bson.M{"$set": set}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("category with this name already exists")
		}
		return nil, err
	}

	return s.Get(ctx, category.ID.Hex())
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httperr.BadRequest("invalid category id")
	}

	result, err := s.categories.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return httperr.NotFound("category not found")
	}
	return nil
}

// Exists reports whether a category with the given id is present. Used when
// a post references a category on update.
func (s *CategoryService) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.categories.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
