package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/adapter/api/mapper"
	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
	"projectmanager/internal/server/middleware"
	"projectmanager/pkg/apierrors"
)

type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List serves the credential lookup the client logs in with:
// GET /users?email=...&password=... returns zero or one matches. The
// unfiltered listing is deliberately not offered; it would expose every
// stored credential.
func (h *UserHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	email := c.Query("email")
	password := c.Query("password")
	if email == "" || password == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserQuery, lang),
		)
		return
	}

	accounts, err := h.users.FindByEmailAndPassword(c.Request.Context(), email, password)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(accounts))
}

func (h *UserHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)

	account, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to find user", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFindUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(account))
}

func (h *UserHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	account, err := h.users.Create(c.Request.Context(), domain.UserAccount{
		ID:       uuid.NewString(),
		Email:    strings.TrimSpace(req.Email),
		Name:     name,
		Password: req.Password,
	})
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(account))
}
