package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
	"github.com/alumnet-dev/alumnet-api/pkg/response"
)

type fakeDashboard struct {
	resp      dto.DashboardResponse
	err       error
	refreshed bool
}

func (f *fakeDashboard) Compose(context.Context) (dto.DashboardResponse, error) {
	return f.resp, f.err
}

func (f *fakeDashboard) Refresh(context.Context) (dto.DashboardResponse, error) {
	f.refreshed = true
	return f.resp, f.err
}

type fakeContactProvider struct {
	resp dto.ContactAnalytics
	err  error
}

func (f *fakeContactProvider) Analytics(context.Context) (dto.ContactAnalytics, error) {
	return f.resp, f.err
}

func TestAnalyticsHandlerDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(AnalyticsHandlerParams{
		Dashboard: &fakeDashboard{resp: dto.DashboardResponse{
			Users: dto.UserOverview{TotalUsers: 11},
		}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	payload, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var result dto.DashboardResponse
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, 11, result.Users.TotalUsers)
}

func TestAnalyticsHandlerDashboardRefreshParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dashboard := &fakeDashboard{resp: dto.DashboardResponse{}}
	handler := NewAnalyticsHandler(AnalyticsHandlerParams{Dashboard: dashboard})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/dashboard?refresh=true", nil)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, dashboard.refreshed)
}

func TestAnalyticsHandlerDashboardError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(AnalyticsHandlerParams{
		Dashboard: &fakeDashboard{err: appErrors.ErrDataAccess},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DATA_ACCESS_ERROR", envelope.Error.Code)
}

func TestAnalyticsHandlerContacts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(AnalyticsHandlerParams{
		Contacts: &fakeContactProvider{resp: dto.ContactAnalytics{TotalMessages: 4, Resolved: 1, Unresolved: 3}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/contacts-analytics", nil)

	handler.Contacts(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalMessages":4`)
}
