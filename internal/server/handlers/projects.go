package handlers

import (
	"encoding/json"
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
	"projectmanager/internal/server/validation"
	"projectmanager/pkg/apierrors"
)

type ProjectHandler struct {
	projects ports.ProjectRepository
}

func NewProjectHandler(projects ports.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List serves GET /projects?userId=... The collection is always scoped
// to one user, so the filter is required.
func (h *ProjectHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectQuery, lang),
		)
		return
	}

	projects, err := h.projects.ListByUser(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list projects", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)

	project, err := h.projects.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to find project", zap.String("project_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFindProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	status := domain.ProjectStatus(req.Status)
	if req.Status == "" {
		status = domain.ProjectStatusActive
	}

	project, err := h.projects.Create(c.Request.Context(), domain.Project{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Name:        name,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	raw, req, ok := decodeProjectPatch(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update project", zap.String("project_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete project", zap.String("project_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// decodeProjectPatch reads the PATCH body once and decodes it both as a
// raw field map (for omitted-versus-null detection) and as the typed
// request.
func decodeProjectPatch(c *gin.Context) (map[string]json.RawMessage, dto.UpdateProjectRequest, bool) {
	var req dto.UpdateProjectRequest

	payload, err := c.GetRawData()
	if err != nil {
		return nil, req, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, req, false
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, req, false
	}

	return raw, req, true
}
