package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

type fakeDirectory struct {
	userReq  dto.UserListRequest
	eventReq dto.EventListRequest
	jobReq   dto.JobListRequest
}

func (f *fakeDirectory) Users(_ context.Context, req dto.UserListRequest) (dto.ListResponse[models.User], error) {
	f.userReq = req
	return dto.ListResponse[models.User]{Items: []models.User{}}, nil
}

func (f *fakeDirectory) Events(_ context.Context, req dto.EventListRequest) (dto.ListResponse[models.Event], error) {
	f.eventReq = req
	return dto.ListResponse[models.Event]{Items: []models.Event{}}, nil
}

func (f *fakeDirectory) Jobs(_ context.Context, req dto.JobListRequest) (dto.ListResponse[models.JobPosting], error) {
	f.jobReq = req
	return dto.ListResponse[models.JobPosting]{Items: []models.JobPosting{}}, nil
}

func TestDirectoryUsersParsesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lists := &fakeDirectory{}
	handler := NewDirectoryHandler(lists)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?search=asha&batch=2019,2020&department=cse&verified=true&page=2&pageSize=5", nil)

	handler.Users(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha", lists.userReq.Search)
	assert.Equal(t, []int{2019, 2020}, lists.userReq.Batches)
	assert.Equal(t, []models.Department{models.DepartmentCSE}, lists.userReq.Departments)
	require.NotNil(t, lists.userReq.Verified)
	assert.True(t, *lists.userReq.Verified)
	assert.Equal(t, 2, lists.userReq.Page)
	assert.Equal(t, 5, lists.userReq.PageSize)
}

func TestDirectoryUsersRejectsBadBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDirectoryHandler(&fakeDirectory{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?batch=abc", nil)

	handler.Users(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryEventsParsesMonthYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lists := &fakeDirectory{}
	handler := NewDirectoryHandler(lists)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events?monthYear=Feb-2025&type=alumni", nil)

	handler.Events(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, lists.eventReq.Month)
	assert.Equal(t, 2025, lists.eventReq.Year)
	assert.Equal(t, "alumni", lists.eventReq.Type)
}

func TestDirectoryEventsRejectsBadMonthYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDirectoryHandler(&fakeDirectory{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events?monthYear=Smarch-2025", nil)

	handler.Events(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryJobsParsesActive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lists := &fakeDirectory{}
	handler := NewDirectoryHandler(lists)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/jobs?active=false&workType=remote", nil)

	handler.Jobs(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, lists.jobReq.Active)
	assert.False(t, *lists.jobReq.Active)
	assert.Equal(t, "remote", lists.jobReq.WorkType)
}

func TestDirectoryEventsParsesRangeFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lists := &fakeDirectory{}
	handler := NewDirectoryHandler(lists)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events?startMonthYear=Jan-2025&endMonthYear=Mar-2025", nil)

	handler.Events(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, lists.eventReq.Start)
	require.NotNil(t, lists.eventReq.End)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *lists.eventReq.Start)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC), *lists.eventReq.End)
}

func TestDirectoryEventsParsesYearAndMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lists := &fakeDirectory{}
	handler := NewDirectoryHandler(lists)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events?year=2025&month=6", nil)

	handler.Events(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, lists.eventReq.Month)
	assert.Equal(t, 2025, lists.eventReq.Year)
}

func TestDirectoryEventsRejectsMonthWithoutYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDirectoryHandler(&fakeDirectory{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events?month=6", nil)

	handler.Events(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
