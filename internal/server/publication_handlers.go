package server

import (
	"redsocial/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	userPublicationsPageSize = 2
	feedPageSize             = 5
)

// NewPublication handles POST /api/publication/newPublication
// @Summary Create a publication
// @Description Creates a text publication authored by the caller
// @Tags publication
// @Accept json
// @Produce json
// @Param request body object{text=string} true "Publication text"
// @Success 201 {object} object{publication=models.Publication}
// @Failure 400 {object} models.ErrorResponse
// @Router /publication/newPublication [post]
func (s *Server) NewPublication(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	publication, err := s.publicationService.Create(ctx, currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"publication": publication})
}

// GetPublication handles GET /api/publication/posts/:id
// @Summary Get a publication
// @Tags publication
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} object{publication=models.Publication}
// @Failure 404 {object} models.ErrorResponse
// @Router /publication/posts/{id} [get]
func (s *Server) GetPublication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	publication, err := s.publicationService.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"publication": publication})
}

// DeletePublication handles DELETE /api/publication/delete/:id
// @Summary Delete a publication
// @Description Deletes a publication; only its author may do so
// @Tags publication
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /publication/delete/{id} [delete]
func (s *Server) DeletePublication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.publicationService.Delete(ctx, currentUserID(c), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Publication deleted"})
}

// UserPublications handles GET /api/publication/publicationUser/:id/:page?
// @Summary List a user's publications
// @Description Returns a page of the given user's publications, newest first
// @Tags publication
// @Produce json
// @Param id path int true "User ID"
// @Param page path int false "1-based page number"
// @Param limit query int false "Page size override, capped at 100"
// @Success 200 {object} object{publications=[]models.Publication,total=int,pages=int}
// @Failure 401 {object} models.ErrorResponse
// @Router /publication/publicationUser/{id}/{page} [get]
func (s *Server) UserPublications(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page, limit := parsePaging(c, userPublicationsPageSize)
	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := s.publicationService.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"publications": result.Items,
		"total":        result.Total,
		"pages":        result.Pages,
		"page":         result.Page,
	})
}

// UploadPublicationMedia handles POST /api/publication/uploadMedia/:id
// @Summary Attach media to a publication
// @Description Accepts a single image file, normalizes it, and attaches it to the caller's publication
// @Tags publication
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Publication ID"
// @Param file0 formData file true "Media image"
// @Success 200 {object} object{publication=models.Publication}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /publication/uploadMedia/{id} [post]
func (s *Server) UploadPublicationMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

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

	publication, err := s.publicationService.SetMedia(ctx, currentUserID(c), id, fileName)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"publication": publication})
}

// PublicationMedia handles GET /api/publication/media/:id
// @Summary Get a publication's media
// @Description Redirects to the stored media URL
// @Tags publication
// @Param id path int true "Publication ID"
// @Success 302
// @Failure 404 {object} models.ErrorResponse
// @Router /publication/media/{id} [get]
func (s *Server) PublicationMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	publication, err := s.publicationService.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if publication.File == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Publication has no media"))
	}
	if _, err := s.mediaService.ResolvePath(publication.File); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Redirect("/uploads/"+publication.File, fiber.StatusFound)
}

// Feed handles GET /api/publication/feed/:page?
// @Summary Publication feed
// @Description Returns a page of publications from users the caller follows, newest first
// @Tags publication
// @Produce json
// @Param page path int false "1-based page number"
// @Param limit query int false "Page size override, capped at 100"
// @Success 200 {object} object{publications=[]models.Publication,total=int,pages=int}
// @Failure 401 {object} models.ErrorResponse
// @Router /publication/feed/{page} [get]
func (s *Server) Feed(c *fiber.Ctx) error {
	page, limit := parsePaging(c, feedPageSize)
	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := s.publicationService.Feed(ctx, currentUserID(c), page, limit)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"publications": result.Items,
		"total":        result.Total,
		"pages":        result.Pages,
		"page":         result.Page,
	})
}
