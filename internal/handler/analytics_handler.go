package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
	"github.com/alumnet-dev/alumnet-api/pkg/response"
)

type dashboardComposer interface {
	Compose(ctx context.Context) (dto.DashboardResponse, error)
	Refresh(ctx context.Context) (dto.DashboardResponse, error)
}

type userAnalyticsProvider interface {
	Detailed(ctx context.Context) (dto.DetailedUserAnalytics, error)
}

type alumniAnalyticsProvider interface {
	Analytics(ctx context.Context) (dto.AlumniAnalytics, error)
}

type eventAnalyticsProvider interface {
	Detailed(ctx context.Context) (dto.EventAnalyticsDetailed, error)
}

type jobAnalyticsProvider interface {
	Detailed(ctx context.Context) (dto.JobAnalyticsDetailed, error)
}

type referralAnalyticsProvider interface {
	Detailed(ctx context.Context) (dto.ReferralAnalyticsDetailed, error)
}

type contactAnalyticsProvider interface {
	Analytics(ctx context.Context) (dto.ContactAnalytics, error)
}

// AnalyticsHandler wires the admin analytics services to HTTP endpoints.
type AnalyticsHandler struct {
	dashboard dashboardComposer
	users     userAnalyticsProvider
	alumni    alumniAnalyticsProvider
	events    eventAnalyticsProvider
	jobs      jobAnalyticsProvider
	referrals referralAnalyticsProvider
	contacts  contactAnalyticsProvider
}

// AnalyticsHandlerParams groups constructor dependencies.
type AnalyticsHandlerParams struct {
	Dashboard dashboardComposer
	Users     userAnalyticsProvider
	Alumni    alumniAnalyticsProvider
	Events    eventAnalyticsProvider
	Jobs      jobAnalyticsProvider
	Referrals referralAnalyticsProvider
	Contacts  contactAnalyticsProvider
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboard: params.Dashboard,
		users:     params.Users,
		alumni:    params.Alumni,
		events:    params.Events,
		jobs:      params.Jobs,
		referrals: params.Referrals,
		contacts:  params.Contacts,
	}
}

// Dashboard godoc
// @Summary Admin dashboard overview
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Drop cached analytics and recompute"
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	if h.dashboard == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	compose := h.dashboard.Compose
	if c.Query("refresh") == "true" {
		compose = h.dashboard.Refresh
	}
	result, err := compose(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "dashboard analytics")
}

// Users godoc
// @Summary Detailed user analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/users-analytics [get]
func (h *AnalyticsHandler) Users(c *gin.Context) {
	result, err := h.users.Detailed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "user analytics")
}

// Alumni godoc
// @Summary Alumni career and education analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/alumni-analytics [get]
func (h *AnalyticsHandler) Alumni(c *gin.Context) {
	result, err := h.alumni.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "alumni analytics")
}

// Events godoc
// @Summary Detailed event analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/events-analytics [get]
func (h *AnalyticsHandler) Events(c *gin.Context) {
	result, err := h.events.Detailed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "event analytics")
}

// Jobs godoc
// @Summary Detailed job posting analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/jobs-analytics [get]
func (h *AnalyticsHandler) Jobs(c *gin.Context) {
	result, err := h.jobs.Detailed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "job analytics")
}

// Referrals godoc
// @Summary Detailed referral analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/referrals-analytics [get]
func (h *AnalyticsHandler) Referrals(c *gin.Context) {
	result, err := h.referrals.Detailed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "referral analytics")
}

// Contacts godoc
// @Summary Contact inbox analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/contacts-analytics [get]
func (h *AnalyticsHandler) Contacts(c *gin.Context) {
	result, err := h.contacts.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "contact analytics")
}
