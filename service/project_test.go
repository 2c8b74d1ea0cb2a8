package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/models"
	"taskhub/repository"
)

func newProjectService() *ProjectService {
	return NewProjectService(repository.NewStore("", "").Projects())
}

func TestSaveStampsDateCreatedOnFirstPersist(t *testing.T) {
	svc := newProjectService()

	saved, err := svc.Save(&models.Project{Code: "P1", Name: "Project 1"})
	require.NoError(t, err)
	assert.Equal(t, today(), saved.DateCreated)
}

func TestSaveKeepsDateCreatedOnUpdate(t *testing.T) {
	svc := newProjectService()

	saved, err := svc.Save(&models.Project{Code: "P1", Name: "Project 1"})
	require.NoError(t, err)

	update := saved.Clone()
	update.Name = "renamed"
	update.DateCreated = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Save(update)
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, saved.DateCreated, updated.DateCreated)
}

func TestFindByIDNotFoundMessage(t *testing.T) {
	svc := newProjectService()

	_, err := svc.FindByID(999)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "Project 999 not found")
}

func TestUpdateByIDForcesPathID(t *testing.T) {
	svc := newProjectService()

	saved, err := svc.Save(&models.Project{Code: "X", Name: "a"})
	require.NoError(t, err)

	update := &models.Project{ID: 42, Code: "X", Name: "b"}
	updated, err := svc.UpdateByID(saved.ID, update)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "b", updated.Name)
	assert.Equal(t, saved.DateCreated, updated.DateCreated)
}

func TestUpdateByIDUnknownProject(t *testing.T) {
	svc := newProjectService()

	_, err := svc.UpdateByID(7, &models.Project{Code: "X", Name: "b"})
	assert.True(t, models.IsNotFound(err))
}

func TestDeleteByIDUnknownProject(t *testing.T) {
	svc := newProjectService()

	err := svc.DeleteByID(7)
	assert.EqualError(t, err, "Project 7 not found")
}

func TestFindByNameDelegatesToSubstringMatch(t *testing.T) {
	svc := newProjectService()
	_, err := svc.Save(&models.Project{Code: "P1", Name: "Project 1"})
	require.NoError(t, err)
	_, err = svc.Save(&models.Project{Code: "A1", Name: "Alpha"})
	require.NoError(t, err)

	found, err := svc.FindByName("roject")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Project 1", found[0].Name)
}

func TestSaveAllStampsNewEntities(t *testing.T) {
	svc := newProjectService()

	saved, err := svc.SaveAll([]*models.Project{
		{Code: "P1", Name: "Project 1"},
		{Code: "P2", Name: "Project 2"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, p := range saved {
		assert.Equal(t, today(), p.DateCreated)
	}
}
