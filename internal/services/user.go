package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/auth"
	"blog-backend/internal/httperr"
	"blog-backend/internal/models"
)

// UserService handles registration, login and user administration.
type UserService struct {
	users  *mongo.Collection
	tokens *auth.TokenManager
}

func NewUserService(database *mongo.Database, tokens *auth.TokenManager) *UserService {
	return &UserService{
		users:  database.Collection("users"),
		tokens: tokens,
	}
}

// Register creates a user with a hashed password and issues a token.
// Uniqueness of email and username is enforced by the collection's indexes.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  hash,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", httperr.Conflict("user with that email or username already exists")
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials via bcrypt comparison. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil || !auth.CheckPassword(password, user.Password) {
		return nil, "", httperr.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GetByID fetches a user without the password hash.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.BadRequest("invalid user id")
	}

	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	if err := s.users.FindOne(ctx, bson.M{"_id": objID}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users, passwords excluded.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserInput carries the editable profile fields; nil means unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
}

// Update edits username and/or email. Only the user themselves or an admin
// may do this.
func (s *UserService) Update(ctx context.Context, caller auth.Identity, id string, input UpdateUserInput) (*models.User, error) {
	if !caller.CanModify(id) {
		return nil, httperr.Forbidden("not authorized to update this user")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.BadRequest("invalid user id")
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Username != nil {
		set["username"] = *input.Username
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("user with this email or username already exists")
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, httperr.NotFound("user not found")
	}

	return s.GetByID(ctx, id)
}

// Delete removes a user. Admin only, enforced at the route.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": user.ID}); err != nil {
		return nil, err
	}
	return user, nil
}
