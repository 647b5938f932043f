// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// errInternal は500応答の固定メッセージです。詳細はログにのみ出力します。
const errInternal = "internal server error"

// UserUsecase はユーザーCRUD操作のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	CreateUser(ctx context.Context, f usecase.UserFields) (*entity.User, error)
	PatchUser(ctx context.Context, id uint, f usecase.UserFields) error
	ReplaceUser(ctx context.Context, id uint, f usecase.UserFields) error
	DeleteUser(ctx context.Context, id uint) error
}

// UserHandler はユーザー関連のHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List はユーザー一覧を返します。
// ?format=json ならJSON配列、?format=text ならプレーンテキスト、それ以外はHTMLで返却します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "list users failed", err)
		return
	}
	h.render(c, fromFormatQuery(c), users)
}

// ListByHeader はAcceptヘッダーでユーザー一覧の形式を選択します。
// application/json と text/plain 以外は404を返します。
func (h *UserHandler) ListByHeader(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "list users failed", err)
		return
	}
	rep := fromAcceptHeader(c)
	if rep == representationNone {
		c.Status(http.StatusNotFound)
		return
	}
	h.render(c, rep, users)
}

// Get は1件のユーザーをHTMLで返します。存在しない場合は404を返します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get user failed", err)
		return
	}
	c.HTML(http.StatusOK, "user.html", gin.H{"user": dto.NewUserView(*user)})
}

// Create はユーザーを登録し、成功時は本文なしで201を返します。
func (h *UserHandler) Create(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	user, err := h.uc.CreateUser(c.Request.Context(), fields)
	if err != nil {
		h.fail(c, "create user failed", err)
		return
	}
	slog.Info("user created", "id", user.ID, "remote_addr", c.ClientIP())
	c.Status(http.StatusCreated)
}

// Patch は送信された空でないフィールドだけを更新し、200を返します。
func (h *UserHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	if err := h.uc.PatchUser(c.Request.Context(), id, fields); err != nil {
		h.fail(c, "patch user failed", err)
		return
	}
	c.Status(http.StatusOK)
}

// Replace は3フィールドすべてを上書きし、/users へ302でリダイレクトします。
func (h *UserHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	if err := h.uc.ReplaceUser(c.Request.Context(), id, fields); err != nil {
		h.fail(c, "replace user failed", err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// Delete はユーザーを削除し、存在有無にかかわらず204を返します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, "delete user failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) render(c *gin.Context, rep representation, users []entity.User) {
	switch rep {
	case representationJSON:
		c.JSON(http.StatusOK, toResponses(users))
	case representationText:
		c.String(http.StatusOK, formatText(users))
	default:
		c.HTML(http.StatusOK, "users.html", gin.H{"users": toViews(users)})
	}
}

// fail maps usecase errors to responses. Not-found is 404; anything else is a store failure.
func (h *UserHandler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	slog.Error(msg, "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}

// parseID reads :id. A non-numeric ID cannot match any row, so it answers 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// bindFields decodes a form or JSON body. Only undecodable bodies are rejected.
func bindFields(c *gin.Context) (usecase.UserFields, bool) {
	var req dto.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("request body decode failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return usecase.UserFields{}, false
	}
	return usecase.UserFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, true
}
