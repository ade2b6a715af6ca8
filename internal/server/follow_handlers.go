package server

import (
	"context"

	"redsocial/internal/middleware"
	"redsocial/internal/models"
	"redsocial/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const followListPageSize = 5

// Follow handles POST /api/follow/follow
// @Summary Follow a user
// @Description Creates a follow edge from the caller to the given user
// @Tags follow
// @Accept json
// @Produce json
// @Param request body object{followed_user=int} true "Target user"
// @Success 201 {object} object{follow=models.Follow}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /follow/follow [post]
func (s *Server) Follow(c *fiber.Ctx) error {
	var req struct {
		FollowedUser uint `json:"followed_user"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	follow, err := s.followService.Follow(ctx, currentUserID(c), req.FollowedUser)
	if err != nil {
		middleware.FollowOperations.WithLabelValues("follow", "error").Inc()
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	middleware.FollowOperations.WithLabelValues("follow", "success").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"follow": follow})
}

// Unfollow handles DELETE /api/follow/unfollow/:id
// @Summary Unfollow a user
// @Description Removes the follow edge from the caller to the given user
// @Tags follow
// @Produce json
// @Param id path int true "Target user ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /follow/unfollow/{id} [delete]
func (s *Server) Unfollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.followService.Unfollow(ctx, currentUserID(c), targetID); err != nil {
		middleware.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	middleware.FollowOperations.WithLabelValues("unfollow", "success").Inc()

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

// Following handles GET /api/follow/following/:id?/:page?
// @Summary List followed users
// @Description Returns a page of users the given user follows, newest edge first
// @Tags follow
// @Produce json
// @Param id path int false "User ID (defaults to the caller)"
// @Param page path int false "1-based page number"
// @Param limit query int false "Page size override, capped at 100"
// @Success 200 {object} object{follows=[]models.Follow,total=int,pages=int}
// @Failure 401 {object} models.ErrorResponse
// @Router /follow/following/{id}/{page} [get]
func (s *Server) Following(c *fiber.Ctx) error {
	return s.listFollows(c, s.followRepo.Following)
}

// Followers handles GET /api/follow/followers/:id?/:page?
// @Summary List followers
// @Description Returns a page of users following the given user, newest edge first
// @Tags follow
// @Produce json
// @Param id path int false "User ID (defaults to the caller)"
// @Param page path int false "1-based page number"
// @Param limit query int false "Page size override, capped at 100"
// @Success 200 {object} object{follows=[]models.Follow,total=int,pages=int}
// @Failure 401 {object} models.ErrorResponse
// @Router /follow/followers/{id}/{page} [get]
func (s *Server) Followers(c *fiber.Ctx) error {
	return s.listFollows(c, s.followRepo.Followers)
}

// listFollows is shared by Following and Followers: same optional params,
// same page size, same follow-graph enrichment of the caller.
func (s *Server) listFollows(c *fiber.Ctx, list func(ctx context.Context, userID uint, page, limit int) (*repository.Page[models.Follow], error)) error {
	userID := currentUserID(c)
	if raw := c.Params("id"); raw != "" {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		userID = id
	}
	page, limit := parsePaging(c, followListPageSize)
	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := list(ctx, userID, page, limit)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	resp := fiber.Map{
		"follows": result.Items,
		"total":   result.Total,
		"pages":   result.Pages,
		"page":    result.Page,
	}

	relations, relErr := s.followService.FolloweesOf(ctx, currentUserID(c))
	if relErr != nil {
		middleware.Logger.WarnContext(c.UserContext(), "follow graph enrichment failed",
			"error", relErr)
	} else {
		resp["users_following"] = relations.Following
		resp["user_follow_me"] = relations.Followers
	}

	return c.JSON(resp)
}
