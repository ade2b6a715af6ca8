package server

import (
	"io"

	"redsocial/internal/middleware"
	"redsocial/internal/models"
	"redsocial/internal/service"

	"github.com/gofiber/fiber/v2"
)

const userListPageSize = 2

// Profile handles GET /api/user/profile/:id
// @Summary Get a user profile
// @Description Returns a user's public profile annotated with the caller's follow relationship
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{user=models.PublicUser,following=bool,follower=bool}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /user/profile/{id} [get]
func (s *Server) Profile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.GetUserByID(ctx, targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	resp := fiber.Map{"user": user.Public()}

	// Relationship annotation is best-effort: a failed graph read degrades
	// the response instead of failing it.
	status, statusErr := s.followService.FollowStatus(ctx, currentUserID(c), targetID)
	if statusErr != nil {
		middleware.Logger.WarnContext(c.UserContext(), "follow status enrichment failed",
			"target_id", targetID, "error", statusErr)
	} else {
		resp["following"] = status.ViewerFollowsTarget
		resp["follower"] = status.TargetFollowsViewer
	}

	return c.JSON(resp)
}

// ListUsers handles GET /api/user/list/:page?
// @Summary List users
// @Description Returns a page of public user records plus the caller's follow-graph id sets
// @Tags user
// @Produce json
// @Param page path int false "1-based page number"
// @Param limit query int false "Page size override, capped at 100"
// @Success 200 {object} object{users=[]models.PublicUser,total=int,pages=int,users_following=[]int,user_follow_me=[]int}
// @Failure 401 {object} models.ErrorResponse
// @Router /user/list/{page} [get]
func (s *Server) ListUsers(c *fiber.Ctx) error {
	page, limit := parsePaging(c, userListPageSize)
	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := s.userService.ListUsers(ctx, page, limit)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	resp := fiber.Map{
		"users": result.Items,
		"total": result.Total,
		"pages": result.Pages,
		"page":  result.Page,
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

// UpdateUser handles PUT /api/user/update
// @Summary Update own profile
// @Description Updates the caller's profile fields; duplicate nick/email against another account is rejected
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{name=string,last_name=string,nick=string,email=string,password=string} true "Fields to update"
// @Success 200 {object} object{user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /user/update [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		LastName string `json:"last_name"`
		Nick     string `json:"nick"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Name:     req.Name,
		LastName: req.LastName,
		Nick:     req.Nick,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UploadAvatar handles POST /api/user/uploadAvatar
// @Summary Upload avatar
// @Description Accepts a single image file, normalizes it, and sets it as the caller's avatar
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param file0 formData file true "Avatar image"
// @Success 200 {object} object{user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /user/uploadAvatar [post]
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	in, err := s.readUploadedFile(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	fileName, err := s.mediaService.Upload(*in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.SetAvatar(ctx, currentUserID(c), fileName)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// Avatar handles GET /api/user/avatar/:id
// @Summary Get a user's avatar
// @Description Redirects to the stored avatar media URL
// @Tags user
// @Param id path int true "User ID"
// @Success 302
// @Failure 404 {object} models.ErrorResponse
// @Router /user/avatar/{id} [get]
func (s *Server) Avatar(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if user.Image == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User has no avatar"))
	}
	if _, err := s.mediaService.ResolvePath(user.Image); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Redirect("/uploads/"+user.Image, fiber.StatusFound)
}

// readUploadedFile extracts the single uploaded image from a multipart
// request. The legacy clients post the file under "file0"; "image" is
// accepted as a fallback.
func (s *Server) readUploadedFile(c *fiber.Ctx) (*service.UploadMediaInput, error) {
	fileHeader, err := c.FormFile("file0")
	if err != nil {
		fileHeader, err = c.FormFile("image")
	}
	if err != nil {
		return nil, models.NewValidationError("No file uploaded")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &service.UploadMediaInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
