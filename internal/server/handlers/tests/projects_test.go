package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
	"projectmanager/internal/server/handlers"
	"projectmanager/internal/server/middleware"
	"projectmanager/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) FindByID(ctx context.Context, id string) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Update(ctx context.Context, id string, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newProjectRouter(repoMock *projectRepositoryMock) *gin.Engine {
	handler := handlers.NewProjectHandler(repoMock)

	router := gin.New()
	group := router.Group("/", middleware.LanguageMiddleware())
	group.GET("/projects", handler.List)
	group.GET("/projects/:id", handler.Get)
	group.POST("/projects", handler.Create)
	group.PATCH("/projects/:id", handler.Update)
	group.DELETE("/projects/:id", handler.Delete)
	return router
}

func TestProjectHandler_List_Success(t *testing.T) {
	repoMock := new(projectRepositoryMock)
	repoMock.On("ListByUser", mock.Anything, "user1_id").Return(
		[]domain.Project{
			{ID: "p1", UserID: "user1_id", Name: "Website", Status: domain.ProjectStatusActive},
			{ID: "p2", UserID: "user1_id", Name: "Backend", Status: domain.ProjectStatusOnHold},
		},
		nil,
	).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodGet, "/projects?userId=user1_id", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "user1_id", got[0].UserID)
	require.Equal(t, "on_hold", got[1].Status)
	repoMock.AssertExpectations(t)
}

func TestProjectHandler_List_RequiresUserFilter(t *testing.T) {
	router := newProjectRouter(new(projectRepositoryMock))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	repoMock := new(projectRepositoryMock)
	repoMock.On("FindByID", mock.Anything, "ghost").
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodGet, "/projects/ghost", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectHandler_Create_DefaultsStatus(t *testing.T) {
	repoMock := new(projectRepositoryMock)
	repoMock.On("Create", mock.Anything, mock.MatchedBy(func(project domain.Project) bool {
		return project.ID != "" && project.Status == domain.ProjectStatusActive
	})).Return(
		domain.Project{ID: "generated_id", UserID: "user1_id", Name: "New", Status: domain.ProjectStatusActive},
		nil,
	).Once()

	router := newProjectRouter(repoMock)

	body := `{"userId":"user1_id","name":"New"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "active", got.Status)
	repoMock.AssertExpectations(t)
}

func TestProjectHandler_Create_RejectsUnknownStatus(t *testing.T) {
	router := newProjectRouter(new(projectRepositoryMock))

	body := `{"userId":"user1_id","name":"New","status":"archived"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_Update_Success(t *testing.T) {
	name := "Renamed"
	repoMock := new(projectRepositoryMock)
	repoMock.On("Update", mock.Anything, "p1", domain.UpdateProjectInput{Name: &name}).Return(
		domain.Project{ID: "p1", UserID: "user1_id", Name: "Renamed", Status: domain.ProjectStatusActive},
		nil,
	).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodPatch, "/projects/p1", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Renamed", got.Name)
	repoMock.AssertExpectations(t)
}

func TestProjectHandler_Update_RejectsUserIDChange(t *testing.T) {
	router := newProjectRouter(new(projectRepositoryMock))

	req := httptest.NewRequest(http.MethodPatch, "/projects/p1", strings.NewReader(`{"userId":"other"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	name := "Renamed"
	repoMock := new(projectRepositoryMock)
	repoMock.On("Update", mock.Anything, "ghost", domain.UpdateProjectInput{Name: &name}).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodPatch, "/projects/ghost", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectHandler_Delete_Success(t *testing.T) {
	repoMock := new(projectRepositoryMock)
	repoMock.On("Delete", mock.Anything, "p1").Return(nil).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodDelete, "/projects/p1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	repoMock.AssertExpectations(t)
}

func TestProjectHandler_Delete_Error(t *testing.T) {
	repoMock := new(projectRepositoryMock)
	repoMock.On("Delete", mock.Anything, "p1").Return(errors.New("db is down")).Once()

	router := newProjectRouter(repoMock)

	req := httptest.NewRequest(http.MethodDelete, "/projects/p1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
