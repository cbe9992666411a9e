package recommendations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outfit-backend/internal/shared/metrics"
	"outfit-backend/internal/shared/server/middleware"
	"outfit-backend/internal/shared/server/respond"
)

// Handler exposes the recommendation endpoints.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register mounts the recommendation routes on the given group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.POST("/recommend", h.Recommend)
}

// RegisterPublic mounts the unauthenticated health route.
func (h *Handler) RegisterPublic(group *gin.RouterGroup) {
	group.GET("/health/recommendation", h.Health)
}

// Recommend handles POST /recommend.
func (h *Handler) Recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}
	c.Set("sessionId", req.SessionID)

	metrics.IncRecommendationStarted()

	resp, err := h.Service.Recommend(c.Request.Context(), req, middleware.RequestIDFromContext(c))
	if err != nil {
		metrics.IncRecommendationFailed()
		switch {
		case errors.Is(err, ErrEmptyProducts):
			respond.Error(c, http.StatusBadRequest, "empty_products", "상품 목록이 비어 있습니다.", nil)
		case errors.Is(err, ErrNoCandidates):
			respond.Error(c, http.StatusNotFound, "no_candidates", "조건에 맞는 상품을 찾을 수 없습니다.", nil)
		case errors.Is(err, ErrLLMUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "추천 서비스를 일시적으로 사용할 수 없습니다.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "추천 처리 중 오류가 발생했습니다.", nil)
		}
		return
	}

	metrics.IncRecommendationCompleted()
	respond.OK(c, resp)
}

// Health handles GET /health/recommendation.
func (h *Handler) Health(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":  "healthy",
		"service": "quiz-recommendation",
	})
}
