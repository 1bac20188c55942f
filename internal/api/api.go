package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/biz/projection"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/internal/dto/mapper"
	"github.com/notarydesk/priorities/internal/dto/request"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/internal/metrics"
	"github.com/notarydesk/priorities/internal/report"
)

// maxBackupSize bounds an uploaded backup.
const maxBackupSize = 32 << 20

type ICommonAPI interface {
	// HealthCheck pings the record store.
	// @GET(api/v1/health)
	HealthCheck(ctx *gin.Context) (response.HealthResponse, error)

	// @GET(api/v1/dashboard)
	Dashboard(ctx *gin.Context) (response.DashboardResponse, error)

	// Report aggregates every employee, or only ?employee_id=<id>.
	// @GET(api/v1/reports)
	Report(ctx *gin.Context, req request.ReportRequest) (response.ReportResponse, error)

	// ReportXLSX streams the report as a workbook.
	// @GET(api/v1/reports/xlsx)
	ReportXLSX(ctx *gin.Context, req request.ReportRequest) error

	// ExportBackup downloads the backup envelope.
	// @GET(api/v1/backup)
	ExportBackup(ctx *gin.Context) error

	// ImportBackup replaces all data with an uploaded envelope. The body is
	// the raw file or a multipart form with a "file" field.
	// @POST(api/v1/backup)
	ImportBackup(ctx *gin.Context) (response.MessageResponse, error)
}

var _ ICommonAPI = (*CommonAPI)(nil)

type CommonAPI struct {
	store     *recordstore.Store
	projector *projection.Projector
	codec     *backup.Codec
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewCommonAPI(store *recordstore.Store, projector *projection.Projector, codec *backup.Codec, m *metrics.Metrics) *CommonAPI {
	return &CommonAPI{store: store, projector: projector, codec: codec, metrics: m, now: time.Now}
}

func (a *CommonAPI) HealthCheck(ctx *gin.Context) (response.HealthResponse, error) {
	if err := a.store.Ping(ctx); err != nil {
		return response.HealthResponse{}, err
	}
	return response.HealthResponse{Status: "healthy", Time: a.now()}, nil
}

func (a *CommonAPI) Dashboard(ctx *gin.Context) (response.DashboardResponse, error) {
	d, err := a.projector.Dashboard(ctx)
	if err != nil {
		return response.DashboardResponse{}, err
	}
	return mapper.ToDashboardResponse(d), nil
}

func (a *CommonAPI) Report(ctx *gin.Context, req request.ReportRequest) (response.ReportResponse, error) {
	r, err := a.projector.Report(ctx, req.EmployeeID)
	if err != nil {
		return response.ReportResponse{}, err
	}
	return mapper.ToReportResponse(r), nil
}

func (a *CommonAPI) ReportXLSX(ctx *gin.Context, req request.ReportRequest) error {
	r, err := a.projector.Report(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, r); err != nil {
		return err
	}
	ctx.Header("Content-Disposition", "attachment; filename="+report.FileName(a.now()))
	ctx.Data(http.StatusOK, report.ContentType, buf.Bytes())
	return nil
}

func (a *CommonAPI) ExportBackup(ctx *gin.Context) error {
	env, err := a.codec.Export(ctx)
	if err != nil {
		a.metrics.Backup("export", metrics.OutcomeFailed)
		return err
	}
	data, err := backup.Marshal(env)
	if err != nil {
		a.metrics.Backup("export", metrics.OutcomeFailed)
		return err
	}
	a.metrics.Backup("export", metrics.OutcomeOK)
	ctx.Header("Content-Disposition", "attachment; filename="+backup.FileName(a.now()))
	ctx.Data(http.StatusOK, "application/json", data)
	return nil
}

func (a *CommonAPI) ImportBackup(ctx *gin.Context) (response.MessageResponse, error) {
	payload, err := readUpload(ctx)
	if err != nil {
		a.metrics.Backup("import", metrics.OutcomeRejected)
		return response.MessageResponse{}, domainerr.NewCorruptBackupError(err)
	}
	env, err := a.codec.Import(ctx, payload)
	if err != nil {
		outcome := metrics.OutcomeFailed
		if domainerr.IsCorruptBackup(err) {
			outcome = metrics.OutcomeRejected
		}
		a.metrics.Backup("import", outcome)
		return response.MessageResponse{}, err
	}
	a.metrics.Backup("import", metrics.OutcomeOK)
	return message("Restauração concluída!", gin.H{"timestamp": env.Timestamp}), nil
}

func readUpload(ctx *gin.Context) ([]byte, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBackupSize)
	if ctx.ContentType() == "multipart/form-data" {
		fh, err := ctx.FormFile("file")
		if err != nil {
			return nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(ctx.Request.Body)
}
