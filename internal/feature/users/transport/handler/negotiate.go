package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
)

// representation is the body format chosen for a user listing.
type representation int

const (
	representationHTML representation = iota
	representationJSON
	representationText
	representationNone
)

const (
	mimeJSON = "application/json"
	mimeText = "text/plain"
)

// fromFormatQuery picks the representation from ?format=, falling back to HTML.
func fromFormatQuery(c *gin.Context) representation {
	switch c.Query("format") {
	case "json":
		return representationJSON
	case "text":
		return representationText
	default:
		return representationHTML
	}
}

// fromAcceptHeader matches the Accept header exactly. There is no wildcard or
// quality-value handling and no HTML fallback.
func fromAcceptHeader(c *gin.Context) representation {
	switch c.GetHeader("Accept") {
	case mimeJSON:
		return representationJSON
	case mimeText:
		return representationText
	default:
		return representationNone
	}
}

// formatText renders one "first / last / email" line per user.
func formatText(users []entity.User) string {
	var b strings.Builder
	for _, u := range users {
		first, last, email := u.Fields()
		b.WriteString(first)
		b.WriteString(" / ")
		b.WriteString(last)
		b.WriteString(" / ")
		b.WriteString(email)
		b.WriteString("\n")
	}
	return b.String()
}

func toResponses(users []entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out
}

func toViews(users []entity.User) []dto.UserView {
	out := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserView(u))
	}
	return out
}
