package dashboard

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/shared/server/middleware"
	"resume-dashboard/internal/shared/server/respond"
	"resume-dashboard/internal/shared/telemetry"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// Handler wires the dashboard HTTP surface to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches dashboard routes. analyzeLimit, if non-nil, is
// applied to the analyze submission only.
func (h *Handler) RegisterRoutes(r gin.IRouter, analyzeLimit gin.HandlerFunc) {
	r.GET("/", h.renderDashboard)
	r.POST("/upload-resume", h.uploadResume)
	if analyzeLimit != nil {
		r.POST("/analyze", analyzeLimit, h.analyze)
	} else {
		r.POST("/analyze", h.analyze)
	}
}

func (h *Handler) renderDashboard(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	state, notices, err := h.Svc.View(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load dashboard", nil)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := dashboardTmpl.Execute(c.Writer, newPageData(state, notices)); err != nil {
		telemetry.Error("dashboard.render.failed", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
	}
}

func (h *Handler) uploadResume(c *gin.Context) {
	c.Set("operation", "upload")
	sessionID := middleware.SessionIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	// Parse explicitly: when the cap trips or the body is malformed, the
	// form fields read as empty and must not be mistaken for cleared
	// inputs. Stored state stays as it was; only a notice is added.
	if err := c.Request.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		message := "Error uploading file. Please try again."
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			message = fmt.Sprintf("File is too large. The limit is %d MB.", h.MaxUploadBytes>>20)
		}
		if err := h.Svc.RejectUpload(c.Request.Context(), sessionID, message); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	resumeText := c.PostForm("resume_text")
	jobDescription := c.PostForm("job_description")

	fileName := ""
	var file io.Reader
	header, err := c.FormFile("file")
	if err == nil && header != nil && header.Filename != "" {
		opened, openErr := header.Open()
		if openErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
			return
		}
		defer opened.Close()
		fileName = header.Filename
		file = opened
	}

	// Empty selection is a no-op: the service carries the inputs through
	// and issues no upstream call.
	if err := h.Svc.Upload(c.Request.Context(), sessionID, fileName, file, resumeText, jobDescription); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) analyze(c *gin.Context) {
	c.Set("operation", "analyze")
	sessionID := middleware.SessionIDFromContext(c)

	resumeText := c.PostForm("resume_text")
	jobDescription := c.PostForm("job_description")

	if err := h.Svc.Analyze(c.Request.Context(), sessionID, resumeText, jobDescription); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process analysis", nil)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
