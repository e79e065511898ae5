package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"loyalty-pass-service/internal/adapter/http/dto"
	"loyalty-pass-service/internal/core/domain"
	"loyalty-pass-service/internal/core/ports"
	"loyalty-pass-service/pkg/apperror"
	"loyalty-pass-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PassHandler handles the /pass/:userId endpoints.
type PassHandler struct {
	loyaltySvc ports.LoyaltyService
	passGen    ports.PassGenerator
	log        zerolog.Logger
}

// NewPassHandler creates a new PassHandler.
func NewPassHandler(loyaltySvc ports.LoyaltyService, passGen ports.PassGenerator, log zerolog.Logger) *PassHandler {
	return &PassHandler{
		loyaltySvc: loyaltySvc,
		passGen:    passGen,
		log:        log,
	}
}

// Create handles POST /pass/:userId. The body is optional.
func (h *PassHandler) Create(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	req, ok := h.bindLoyaltyRequest(c)
	if !ok {
		return
	}

	rec, err := h.loyaltySvc.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().Str("user_id", userID).Interface("data", rec).Msg("user created")
	response.Created(c, fmt.Sprintf("User %s created", userID), dto.ToLoyaltyResponse(rec))
}

// Update handles PUT /pass/:userId and returns the refreshed pass.
func (h *PassHandler) Update(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}
	req, ok := h.bindLoyaltyRequest(c)
	if !ok {
		return
	}

	rec, err := h.loyaltySvc.Update(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().Str("user_id", userID).Interface("data", rec).Msg("user data updated")
	h.sendPass(c, userID, rec)
}

// Get handles GET /pass/:userId.
func (h *PassHandler) Get(c *gin.Context) {
	userID, ok := bindUserID(c)
	if !ok {
		return
	}

	rec, err := h.loyaltySvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.sendPass(c, userID, rec)
}

// sendPass generates the pass for rec. A failure here leaves the stored
// record as it is; the cause is only logged.
func (h *PassHandler) sendPass(c *gin.Context, userID string, rec *domain.LoyaltyRecord) {
	artifact, err := h.passGen.Generate(c.Request.Context(), userID, rec)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error generating pass")
		response.Error(c, err)
		return
	}

	response.Attachment(c, domain.PassContentType, artifact.Filename(), artifact.Data)
}

func bindUserID(c *gin.Context) (string, bool) {
	var uri dto.PassURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid userId"))
		return "", false
	}
	return uri.UserID, true
}

// bindLoyaltyRequest decodes the JSON body. An empty body yields an empty
// request, leaving the required-field decision to the service.
func (h *PassHandler) bindLoyaltyRequest(c *gin.Context) (dto.LoyaltyRequest, bool) {
	var req dto.LoyaltyRequest
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return dto.LoyaltyRequest{}, true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrBodyTooLarge())
			return req, false
		}
		h.log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("invalid request body")
		response.Error(c, apperror.Validation("Invalid request body"))
		return req, false
	}
	return req, true
}
