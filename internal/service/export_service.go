package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
	"github.com/alumnet-dev/alumnet-api/pkg/export"
	"github.com/alumnet-dev/alumnet-api/pkg/jobs"
)

// Export sections and formats accepted by the analytics export endpoint.
const (
	ExportSectionBatches     = "batches"
	ExportSectionDepartments = "departments"

	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"

	exportJobArchive = "archive-export"
)

type artifactStore interface {
	Save(name string, data []byte) (string, error)
	Open(name string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type downloadSigner interface {
	Sign(name string) (string, time.Time, error)
	Verify(token string) (string, time.Time, error)
}

type archiveDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ExportArtifact is a rendered export ready to stream to the client.
// DownloadToken grants re-retrieval of the archived copy until
// ExpiresAt.
type ExportArtifact struct {
	FileName      string
	ContentType   string
	Content       []byte
	DownloadToken string
	ExpiresAt     time.Time
}

// ExportDownload is an archived artifact resolved from a download token.
type ExportDownload struct {
	File        *os.File
	FileName    string
	ContentType string
	SizeBytes   int64
	ExpiresAt   time.Time
}

// ExportService renders membership rollups as downloadable files. Each
// rendered artifact is also archived through the background queue so a
// signed token can fetch it again without re-running the aggregation.
type ExportService struct {
	rollups         rollupProvider
	queue           archiveDispatcher
	signer          downloadSigner
	archive         artifactStore
	validator       *validator.Validate
	csv             *export.CSVExporter
	pdf             *export.PDFExporter
	retentionTTL    time.Duration
	cleanupInterval time.Duration
	logger          *zap.Logger
	now             func() time.Time
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Rollups         rollupProvider
	Queue           archiveDispatcher
	Signer          downloadSigner
	Archive         artifactStore
	RetentionTTL    time.Duration
	CleanupInterval time.Duration
	Logger          *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(params ExportServiceParams) *ExportService {
	retention := params.RetentionTTL
	if retention <= 0 {
		retention = 72 * time.Hour
	}
	return &ExportService{
		rollups:         params.Rollups,
		queue:           params.Queue,
		signer:          params.Signer,
		archive:         params.Archive,
		validator:       validator.New(),
		csv:             export.NewCSVExporter(),
		pdf:             export.NewPDFExporter(),
		retentionTTL:    retention,
		cleanupInterval: params.CleanupInterval,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// Render produces the requested rollup section in the requested format.
func (s *ExportService) Render(ctx context.Context, req dto.ExportRequest) (ExportArtifact, error) {
	if err := s.validator.Struct(req); err != nil {
		return ExportArtifact{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	now := s.now().UTC()

	var (
		data  export.Dataset
		title string
		err   error
	)
	switch req.Section {
	case ExportSectionBatches:
		data, err = s.batchDataset(ctx, now)
		title = "Users by Batch"
	case ExportSectionDepartments:
		data, err = s.departmentDataset(ctx, now)
		title = "Users by Department"
	default:
		return ExportArtifact{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export section %q", req.Section))
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("export dataset failed", zap.String("section", req.Section), zap.Error(err))
		}
		return ExportArtifact{}, appErrors.FromError(err)
	}

	artifact := ExportArtifact{
		FileName: fmt.Sprintf("%s-%s-%s.%s", req.Section, now.Format("20060102"), uuid.NewString()[:8], req.Format),
	}
	switch req.Format {
	case ExportFormatCSV:
		artifact.ContentType = "text/csv"
		artifact.Content, err = s.csv.Render(data)
	case ExportFormatPDF:
		artifact.ContentType = "application/pdf"
		artifact.Content, err = s.pdf.Render(data, title)
	default:
		return ExportArtifact{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export format %q", req.Format))
	}
	if err != nil {
		return ExportArtifact{}, appErrors.WrapAs(appErrors.ErrInternal, err)
	}

	s.archiveArtifact(&artifact)
	return artifact, nil
}

// archiveArtifact enqueues the rendered file for background storage and
// attaches a signed re-download token. Archival is best effort: a full
// queue never fails the live download.
func (s *ExportService) archiveArtifact(artifact *ExportArtifact) {
	if s.queue == nil || s.signer == nil {
		return
	}
	job := jobs.Job{
		ID:      uuid.NewString(),
		Type:    exportJobArchive,
		Payload: ExportArtifact{FileName: artifact.FileName, ContentType: artifact.ContentType, Content: artifact.Content},
	}
	if err := s.queue.Enqueue(job); err != nil {
		if s.logger != nil {
			s.logger.Warn("export archive enqueue failed", zap.String("file", artifact.FileName), zap.Error(err))
		}
		return
	}
	token, expiresAt, err := s.signer.Sign(artifact.FileName)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("export token signing failed", zap.String("file", artifact.FileName), zap.Error(err))
		}
		return
	}
	artifact.DownloadToken = token
	artifact.ExpiresAt = expiresAt
}

// Archived resolves a signed download token to the stored artifact.
func (s *ExportService) Archived(_ context.Context, token string) (ExportDownload, error) {
	if s.signer == nil || s.archive == nil {
		return ExportDownload{}, appErrors.ErrInternal
	}
	name, expiresAt, err := s.signer.Verify(token)
	if err != nil {
		return ExportDownload{}, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	file, err := s.archive.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ExportDownload{}, appErrors.Clone(appErrors.ErrNotFound, "export no longer available")
		}
		return ExportDownload{}, appErrors.WrapAs(appErrors.ErrInternal, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return ExportDownload{}, appErrors.WrapAs(appErrors.ErrInternal, err)
	}
	return ExportDownload{
		File:        file,
		FileName:    name,
		ContentType: contentTypeFor(name),
		SizeBytes:   info.Size(),
		ExpiresAt:   expiresAt,
	}, nil
}

// StartCleanup boots a goroutine that purges archived exports older
// than the retention TTL.
func (s *ExportService) StartCleanup(ctx context.Context) {
	if s.archive == nil || s.cleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.archive.CleanupOlderThan(s.retentionTTL)
				if err != nil {
					if s.logger != nil {
						s.logger.Warn("export cleanup failed", zap.Error(err))
					}
					continue
				}
				if len(removed) > 0 && s.logger != nil {
					s.logger.Info("expired exports removed", zap.Int("count", len(removed)))
				}
			}
		}
	}()
}

func (s *ExportService) batchDataset(ctx context.Context, now time.Time) (export.Dataset, error) {
	rows, err := s.rollups.BatchAnalytics(ctx, now, "")
	if err != nil {
		return export.Dataset{}, err
	}

	data := export.Dataset{
		Headers: []string{"Batch", "Total", "Admins", "Alumni", "Students", "Recent %"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(row.Batch),
			strconv.Itoa(row.Total),
			strconv.Itoa(row.ByRole.Admin),
			strconv.Itoa(row.ByRole.Alumni),
			strconv.Itoa(row.ByRole.Student),
			strconv.FormatFloat(row.Growth.Rate, 'f', 2, 64),
		})
	}
	return data, nil
}

func (s *ExportService) departmentDataset(ctx context.Context, now time.Time) (export.Dataset, error) {
	rows, err := s.rollups.DepartmentAnalytics(ctx, now, "")
	if err != nil {
		return export.Dataset{}, err
	}

	data := export.Dataset{
		Headers: []string{"Department", "Total", "Admins", "Alumni", "Students", "Recent %"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, []string{
			string(row.Department),
			strconv.Itoa(row.Total),
			strconv.Itoa(row.ByRole.Admin),
			strconv.Itoa(row.ByRole.Alumni),
			strconv.Itoa(row.ByRole.Student),
			strconv.FormatFloat(row.Growth.Rate, 'f', 2, 64),
		})
	}
	return data, nil
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// ExportArchiveWorker bridges queue jobs to the artifact store.
type ExportArchiveWorker struct {
	archive artifactStore
	logger  *zap.Logger
}

// NewExportArchiveWorker constructs a worker.
func NewExportArchiveWorker(archive artifactStore, logger *zap.Logger) *ExportArchiveWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportArchiveWorker{archive: archive, logger: logger}
}

// Handle persists one rendered export.
func (w *ExportArchiveWorker) Handle(_ context.Context, job jobs.Job) error {
	artifact, ok := job.Payload.(ExportArtifact)
	if !ok {
		return fmt.Errorf("unexpected payload %T for job %s", job.Payload, job.ID)
	}
	if _, err := w.archive.Save(artifact.FileName, artifact.Content); err != nil {
		return err
	}
	w.logger.Debug("export archived", zap.String("file", artifact.FileName))
	return nil
}
