package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/services"
)

type PostHandler struct {
	Posts   *services.PostService
	Media   MediaStore
	Logger  *slog.Logger
	Timeout time.Duration
}

// List godoc
// @Summary      List posts
// @Description  Newest first, cursor paginated
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int     false  "Max items per page"
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Success      200  {object}  dto.Page[dto.PostResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts/ [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	page, err := h.Posts.List(ctx, actorFrom(c), c.QueryInt("limit"), c.Query("cursor"))
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(page)
}

// Create godoc
// @Summary      Create a post
// @Description  Multipart with an "image" file, or JSON with an image path
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image    formData  file    false  "Image file"
// @Param        caption  formData  string  false  "Caption"
// @Success      201  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts/ [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}
	saved, err := h.attachImage(c, &body.Image)
	if err != nil {
		return respond(c, h.Logger, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	post, err := h.Posts.Create(ctx, actorFrom(c), body)
	if err != nil {
		h.Media.Remove(saved)
		return respond(c, h.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Get godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/ [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	post, err := h.Posts.Get(ctx, actorFrom(c), c.Params("id"))
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(post)
}

// Update godoc
// @Summary      Update a post
// @Description  Only the owner can update. Returns 202 on success.
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "Post ID"
// @Param        body  body  dto.UpdatePostReq  true  "New image and caption"
// @Success      202  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/ [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdatePostReq
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	// Nothing is written to disk for a missing post or a non-owner.
	actor := actorFrom(c)
	if err := h.Posts.Authorize(ctx, actor, c.Params("id")); err != nil {
		return respond(c, h.Logger, err)
	}
	saved, err := h.attachImage(c, &body.Image)
	if err != nil {
		return respond(c, h.Logger, err)
	}

	if _, err := h.Posts.Update(ctx, actor, c.Params("id"), body); err != nil {
		h.Media.Remove(saved)
		return respond(c, h.Logger, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.StatusResponse{Status: true, Message: "Successfully updated"})
}

// Delete godoc
// @Summary      Delete a post
// @Description  Owner only. Removes its comments and likes too.
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path  string  true  "Post ID"
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/ [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Posts.Delete(ctx, actorFrom(c), c.Params("id")); err != nil {
		return respond(c, h.Logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// attachImage stores an uploaded image and points image at it. It returns
// the stored path, empty when the request had no file.
func (h *PostHandler) attachImage(c *fiber.Ctx, image *string) (string, error) {
	path, ok, err := h.Media.SaveImage(c)
	if err != nil || !ok {
		return "", err
	}
	*image = path
	return path, nil
}
