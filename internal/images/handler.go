package images

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"outfit-backend/internal/jobs"
	"outfit-backend/internal/shared/metrics"
	"outfit-backend/internal/shared/server/respond"
	"outfit-backend/internal/shared/telemetry"
)

const compositeJobTimeout = 2 * time.Minute

// Handler exposes the image endpoints. Background removal is synchronous;
// composite generation runs as a polled job.
type Handler struct {
	Service *Service
	Jobs    *jobs.Manager
}

func NewHandler(service *Service, manager *jobs.Manager) *Handler {
	return &Handler{Service: service, Jobs: manager}
}

// Register mounts the image routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/image/remove-background", h.RemoveBackground)
	group.POST("/image/composite", h.CreateComposite)
	group.GET("/image/jobs/:jobId", h.JobStatus)
}

type removeBackgroundRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// RemoveBackground handles POST /images/remove-background.
func (h *Handler) RemoveBackground(c *gin.Context) {
	var req removeBackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}

	url, err := h.Service.RemoveBackground(c.Request.Context(), req.ImageURL)
	if err != nil {
		if errors.Is(err, ErrNoRemover) {
			respond.Error(c, http.StatusServiceUnavailable, "rembg_unavailable", "배경 제거 서비스를 사용할 수 없습니다.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "배경 제거에 실패했습니다.", nil)
		return
	}

	respond.OK(c, gin.H{
		"success":    true,
		"outputPath": url,
		"message":    "배경 제거 완료",
	})
}

type compositeRequest struct {
	Items []CompositeItem `json:"items" binding:"required"`
}

// CreateComposite handles POST /images/composite. The render runs in the
// background; the caller polls the returned job ID.
func (h *Handler) CreateComposite(c *gin.Context) {
	var req compositeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}
	if err := ValidateItems(req.Items); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_items", "합성할 상품 목록이 올바르지 않습니다.", err.Error())
		return
	}

	jobID := h.Jobs.Create()
	go h.runComposite(jobID, req.Items)

	respond.JSON(c, http.StatusAccepted, gin.H{
		"jobId":  jobID,
		"status": jobs.StatusPending,
	})
}

func (h *Handler) runComposite(jobID string, items []CompositeItem) {
	ctx, cancel := context.WithTimeout(context.Background(), compositeJobTimeout)
	defer cancel()

	if err := h.Jobs.Start(jobID); err != nil {
		return
	}

	result, err := h.Service.CreateComposite(ctx, items)
	if err != nil {
		telemetry.Error("images.composite_job", map[string]any{
			"job_id": jobID,
			"error":  err.Error(),
		})
		metrics.IncCompositeJob(jobs.StatusFailed)
		_ = h.Jobs.Fail(jobID, err)
		return
	}

	metrics.IncCompositeJob(jobs.StatusCompleted)
	_ = h.Jobs.Complete(jobID, result)
}

// JobStatus handles GET /images/jobs/:id.
func (h *Handler) JobStatus(c *gin.Context) {
	job, err := h.Jobs.Get(c.Param("jobId"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "작업을 찾을 수 없습니다.", nil)
		return
	}
	respond.OK(c, job)
}
