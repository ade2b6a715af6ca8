package server

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"redsocial/internal/models"
	"redsocial/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// storeTimeout bounds every store-backed handler path. Exceeding it maps to
// 504 via models.StatusForError.
const storeTimeout = 5 * time.Second

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage reads the optional 1-based :page route parameter, defaulting to
// the first page. Out-of-range values clamp rather than error.
func parsePage(c *fiber.Ctx) int {
	page, err := c.ParamsInt("page")
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// requestContext derives a deadline-bound context for store calls from the
// request's context. Callers must defer the cancel.
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

// parsePaging combines the :page route parameter with the optional ?limit=
// query override, falling back to defaultLimit and capping oversized values.
func parsePaging(c *fiber.Ctx, defaultLimit int) (int, int) {
	return repository.NormalizePage(parsePage(c), c.QueryInt("limit"), defaultLimit)
}

// currentUserID returns the authenticated caller's id as stored by
// AuthRequired. Zero means no authenticated user.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
