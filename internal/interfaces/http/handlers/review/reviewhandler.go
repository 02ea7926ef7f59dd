package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/review/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type ReviewHandler struct {
	createReviewUC           usecases.CreateReviewExecutor
	updateReviewUC           usecases.UpdateReviewExecutor
	deleteReviewUC           usecases.DeleteReviewExecutor
	getReviewUC              usecases.GetReviewExecutor
	createTicketWithReviewUC usecases.CreateTicketWithReviewExecutor
	logger                   logger.Interface
}

func NewReviewHandler(
	createReviewUC usecases.CreateReviewExecutor,
	updateReviewUC usecases.UpdateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	getReviewUC usecases.GetReviewExecutor,
	createTicketWithReviewUC usecases.CreateTicketWithReviewExecutor,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUC:           createReviewUC,
		updateReviewUC:           updateReviewUC,
		deleteReviewUC:           deleteReviewUC,
		getReviewUC:              getReviewUC,
		createTicketWithReviewUC: createTicketWithReviewUC,
		logger:                   logger.NewLogger(),
	}
}

// CreateReview handles POST /review/create/:ticket_id/
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create review", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.createReviewUC.Execute(c.Request.Context(), req.ToCommand(ticketID, userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusCreated, "Review created successfully", "/", result)
}

// GetReview handles GET /review/edit/:review_id/
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.GetReviewQuery{
		ReviewID: reviewID,
		ActorID:  userID.(uint),
	}

	result, err := h.getReviewUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateReview handles POST /review/edit/:review_id/
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update review", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.updateReviewUC.Execute(c.Request.Context(), req.ToCommand(reviewID, userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusOK, "Review updated successfully", "/posts/", result)
}

// DeleteReview handles POST /review/delete/:review_id/
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteReviewCommand{
		ReviewID: reviewID,
		ActorID:  userID.(uint),
	}

	result, err := h.deleteReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusOK, "Review deleted successfully", "/posts/", result)
}

// CreateTicketWithReview handles POST /ticket-review/create/
func (h *ReviewHandler) CreateTicketWithReview(c *gin.Context) {
	var req CreateTicketWithReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket with review", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.createTicketWithReviewUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusCreated, "Ticket and review created successfully", "/", result)
}
