// Package api exposes arbitrage detection over HTTP with gin.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fxarb/arbitrage"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// DetectResponse is the body of a successful detection.
type DetectResponse struct {
	Cycles    []arbitrage.Cycle `json:"cycles"`
	Count     int               `json:"count"`
	RequestID string            `json:"request_id"`
}

// CheckResponse is the body of a successful arbitrage check.
type CheckResponse struct {
	Arbitrage bool   `json:"arbitrage"`
	RequestID string `json:"request_id"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id"`
}

// Handler serves detection requests.
type Handler struct {
	detector     *arbitrage.Detector
	logger       logrus.FieldLogger
	maxBodyBytes int64
}

// NewHandler creates a Handler. maxBodyBytes ≤ 0 disables the body limit.
func NewHandler(detector *arbitrage.Detector, logger logrus.FieldLogger, maxBodyBytes int64) *Handler {
	return &Handler{detector: detector, logger: logger, maxBodyBytes: maxBodyBytes}
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DetectCycles handles POST /api/v1/arbitrage/cycles.
func (h *Handler) DetectCycles(c *gin.Context) {
	reqID := c.GetString(requestIDKey)
	log := h.logger.WithField(requestIDKey, reqID)

	snap, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	cycles, err := h.detector.Detect(snap)
	if err != nil {
		h.rejectDetection(c, err)
		return
	}

	log.WithFields(logrus.Fields{
		"currencies": snap.Size(),
		"cycles":     len(cycles),
	}).Info("detection served")

	c.JSON(http.StatusOK, DetectResponse{Cycles: cycles, Count: len(cycles), RequestID: reqID})
}

// CheckArbitrage handles POST /api/v1/arbitrage/check and answers only
// whether any profitable loop exists.
func (h *Handler) CheckArbitrage(c *gin.Context) {
	snap, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	found, err := h.detector.HasArbitrage(snap)
	if err != nil {
		h.rejectDetection(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{Arbitrage: found, RequestID: c.GetString(requestIDKey)})
}

// bindSnapshot decodes the request body under the configured size limit.
// On failure it writes the error response and returns false.
func (h *Handler) bindSnapshot(c *gin.Context) (arbitrage.MarketSnapshot, bool) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var snap arbitrage.MarketSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.fail(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return snap, false
		}
		h.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return snap, false
	}

	return snap, true
}

// rejectDetection maps detector errors to HTTP statuses.
func (h *Handler) rejectDetection(c *gin.Context, err error) {
	h.logger.WithError(err).WithField(requestIDKey, c.GetString(requestIDKey)).Warn("detection rejected")
	switch {
	case errors.Is(err, arbitrage.ErrTooLarge):
		h.fail(c, http.StatusRequestEntityTooLarge, "Too many currencies", err)
	case errors.Is(err, arbitrage.ErrShape), errors.Is(err, arbitrage.ErrDomain), errors.Is(err, arbitrage.ErrSource):
		h.fail(c, http.StatusBadRequest, "Invalid market snapshot", err)
	default:
		h.fail(c, http.StatusInternalServerError, "Detection failed", err)
	}
}

func (h *Handler) fail(c *gin.Context, status int, msg string, err error) {
	c.JSON(status, ErrorResponse{Error: msg, Details: err.Error(), RequestID: c.GetString(requestIDKey)})
}

// RequestID assigns every request an identifier, reusing a valid incoming
// X-Request-ID header and generating a UUID otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
