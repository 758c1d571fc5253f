package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
)

func TestProjectStore_Load_ReplacesCollection(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, "projects?userId=user1_id", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{
				{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"},
				{ID: "p2", UserID: "user1_id", Name: "Two", Status: "on_hold"},
			}
		}).
		Return(nil).Once()

	store := NewProjectStore(clientMock)
	projects := store.Load(context.Background(), "user1_id")

	require.Len(t, projects, 2)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, domain.ProjectStatusOnHold, projects[1].Status)
	assert.Equal(t, projects, store.Projects())
	clientMock.AssertExpectations(t)
}

func TestProjectStore_Load_FailureResetsToEmpty(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, "projects?userId=user1_id", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"}}
		}).
		Return(nil).Once()
	clientMock.On("Get", mock.Anything, "projects?userId=user1_id", mock.Anything).
		Return(errors.New("api down")).Once()

	store := NewProjectStore(clientMock)
	require.Len(t, store.Load(context.Background(), "user1_id"), 1)

	projects := store.Load(context.Background(), "user1_id")

	assert.Nil(t, projects)
	assert.Empty(t, store.Projects())
}

func TestProjectStore_GetByID(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, "projects/p1", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*dto.ProjectItem)
			*out = dto.ProjectItem{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"}
		}).
		Return(nil).Once()

	store := NewProjectStore(clientMock)
	project, ok := store.GetByID(context.Background(), "p1")

	require.True(t, ok)
	assert.Equal(t, "One", project.Name)
	// A point read never populates the collection.
	assert.Empty(t, store.Projects())
}

func TestProjectStore_GetByID_Failure(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, "projects/ghost", mock.Anything).
		Return(errors.New("api down")).Once()

	store := NewProjectStore(clientMock)
	_, ok := store.GetByID(context.Background(), "ghost")

	assert.False(t, ok)
}

func TestProjectStore_Create_AppendsOnSuccess(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Post", mock.Anything, "projects", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*dto.ProjectItem)
			*out = dto.ProjectItem{ID: "p1", UserID: "user1_id", Name: "New", Status: "active"}
		}).
		Return(nil).Once()

	store := NewProjectStore(clientMock)
	project, err := store.Create(context.Background(), domain.CreateProjectInput{
		UserID: "user1_id",
		Name:   "New",
		Status: domain.ProjectStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	require.Len(t, store.Projects(), 1)
}

func TestProjectStore_Create_FailureLeavesCacheUntouched(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Post", mock.Anything, "projects", mock.Anything, mock.Anything).
		Return(errors.New("api down")).Once()

	store := NewProjectStore(clientMock)
	_, err := store.Create(context.Background(), domain.CreateProjectInput{Name: "New"})

	require.Error(t, err)
	assert.Empty(t, store.Projects())
}

func TestProjectStore_Update_ReplacesInPlace(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{
				{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"},
				{ID: "p2", UserID: "user1_id", Name: "Two", Status: "active"},
			}
		}).
		Return(nil).Once()
	clientMock.On("Patch", mock.Anything, "projects/p1", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*dto.ProjectItem)
			*out = dto.ProjectItem{ID: "p1", UserID: "user1_id", Name: "Renamed", Status: "completed"}
		}).
		Return(nil).Once()

	store := NewProjectStore(clientMock)
	store.Load(context.Background(), "user1_id")

	name := "Renamed"
	updated, err := store.Update(context.Background(), "p1", domain.UpdateProjectInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusCompleted, updated.Status)

	projects := store.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, "Renamed", projects[0].Name)
	assert.Equal(t, "Two", projects[1].Name)
}

func TestProjectStore_Delete_RemovesExactlyOne(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{
				{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"},
				{ID: "p2", UserID: "user1_id", Name: "Two", Status: "active"},
			}
		}).
		Return(nil).Once()
	clientMock.On("Delete", mock.Anything, "projects/p2").Return(nil).Once()

	store := NewProjectStore(clientMock)
	store.Load(context.Background(), "user1_id")

	require.NoError(t, store.Delete(context.Background(), "p2"))

	projects := store.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)
}

func TestProjectStore_Delete_FailureLeavesCacheUntouched(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"}}
		}).
		Return(nil).Once()
	clientMock.On("Delete", mock.Anything, "projects/p1").Return(errors.New("api down")).Once()

	store := NewProjectStore(clientMock)
	store.Load(context.Background(), "user1_id")

	require.Error(t, store.Delete(context.Background(), "p1"))
	assert.Len(t, store.Projects(), 1)
}

func TestProjectStore_ClearEmptiesAndNotifies(t *testing.T) {
	clientMock := new(remoteClientMock)
	clientMock.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]dto.ProjectItem)
			*out = []dto.ProjectItem{{ID: "p1", UserID: "user1_id", Name: "One", Status: "active"}}
		}).
		Return(nil).Once()

	store := NewProjectStore(clientMock)
	store.Load(context.Background(), "user1_id")

	var last []domain.Project
	fired := 0
	store.Subscribe(func(projects []domain.Project) {
		fired++
		last = projects
	})

	store.Clear()

	assert.Equal(t, 1, fired)
	assert.Empty(t, last)
	assert.Empty(t, store.Projects())
}
