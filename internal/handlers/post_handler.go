package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-backend/internal/httperr"
	"blog-backend/internal/middleware"
	"blog-backend/internal/services"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// List handles GET /posts?page&limit&category&published&search.
func (h *PostHandler) List(c *fiber.Ctx) error {
	params := services.ListParams{
		Page:     int64(c.QueryInt("page", 1)),
		Limit:    int64(c.QueryInt("limit", 10)),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if published := c.Query("published"); published != "" {
		value := published == "true"
		params.Published = &value
	}

	list, err := h.posts.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"count":       list.Count,
		"total":       list.Total,
		"pages":       list.Pages,
		"currentPage": list.CurrentPage,
		"data":        list.Items,
	})
}

// Get handles GET /posts/:id where :id is an ObjectID or a slug.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": post})
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return httperr.Unauthorized("missing token")
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return httperr.BadRequest(err.Error())
	}

	post, err := h.posts.Create(c.Context(), identity, services.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "post created successfully",
		"data":    post,
	})
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return httperr.Unauthorized("missing token")
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return httperr.BadRequest(err.Error())
	}

	post, err := h.posts.Update(c.Context(), identity, c.Params("id"), services.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "post updated successfully",
		"data":    post,
	})
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return httperr.Unauthorized("missing token")
	}

	if err := h.posts.Delete(c.Context(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "post deleted successfully"})
}

// AddComment handles POST /posts/:id/comments.
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return httperr.Unauthorized("missing token")
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return httperr.BadRequest(err.Error())
	}

	if err := h.posts.AddComment(c.Context(), identity, c.Params("id"), req.Content); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "comment added successfully",
	})
}
