package v1

import (
	"errors"
	"net/http"

	"go-quote-backend/internal/delivery/http/response"
	"go-quote-backend/internal/domain"
	"go-quote-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUC domain.QuoteUsecase
}

// NewQuoteHandler registers the public submit route and the admin read routes
func NewQuoteHandler(public *gin.RouterGroup, admin *gin.RouterGroup, quoteUC domain.QuoteUsecase) {
	handler := &QuoteHandler{
		quoteUC: quoteUC,
	}

	// Public route - NO authentication required
	public.POST("/quote-requests", handler.SubmitQuoteRequest)

	// Admin reads (static service key)
	admin.GET("/quote-requests", handler.ListQuoteRequests)
	admin.GET("/quote-requests/:id", handler.GetQuoteRequest)
}

// SubmitQuoteRequest godoc
// @Summary      Submit Quote Request
// @Description  Persist a quote request with its selected services and notify by email. Public endpoint.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.SubmitQuoteRequest  true  "Quote Request Data"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /quote-requests [post]
func (h *QuoteHandler) SubmitQuoteRequest(c *gin.Context) {
	var req domain.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindingErrorMessage(err)))
		return
	}

	session := domain.NewFormSession(req)

	result, err := h.quoteUC.Submit(c.Request.Context(), session)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"requestNumber": result.RequestNumber,
	})
}

// ListQuoteRequests godoc
// @Summary      List Quote Requests
// @Description  All persisted quote requests, newest first. Admin only.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /quote-requests [get]
func (h *QuoteHandler) ListQuoteRequests(c *gin.Context) {
	requests, err := h.quoteUC.List(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Quote requests retrieved", requests)
}

// GetQuoteRequest godoc
// @Summary      Get Quote Request
// @Description  One quote request with its service rows. Admin only.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quote Request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /quote-requests/{id} [get]
func (h *QuoteHandler) GetQuoteRequest(c *gin.Context) {
	request, err := h.quoteUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Quote request not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Quote request retrieved", request)
}
