package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/service"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
	"github.com/alumnet-dev/alumnet-api/pkg/response"
)

type exportRenderer interface {
	Render(ctx context.Context, req dto.ExportRequest) (service.ExportArtifact, error)
	Archived(ctx context.Context, token string) (service.ExportDownload, error)
}

// ExportHandler streams analytics rollups as downloadable files.
type ExportHandler struct {
	exports exportRenderer
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports exportRenderer) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export godoc
// @Summary Export membership rollups
// @Tags Analytics
// @Produce text/csv,application/pdf
// @Security BearerAuth
// @Param section query string true "Rollup section" Enums(batches, departments)
// @Param format query string true "Output format" Enums(csv, pdf)
// @Success 200 {file} file
// @Router /admin/analytics-export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "section must be batches|departments and format csv|pdf"))
		return
	}

	artifact, err := h.exports.Render(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	if artifact.DownloadToken != "" {
		c.Header("X-Download-Token", artifact.DownloadToken)
		c.Header("X-Download-Expires", artifact.ExpiresAt.UTC().Format(http.TimeFormat))
	}
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}

// Download godoc
// @Summary Re-download an archived export
// @Tags Analytics
// @Produce text/csv,application/pdf
// @Security BearerAuth
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Router /admin/analytics-export/downloads/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}

	download, err := h.exports.Archived(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close() //nolint:errcheck

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, download.SizeBytes, download.ContentType, download.File, nil)
}
