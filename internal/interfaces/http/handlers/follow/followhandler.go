package follow

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/follow/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type FollowHandler struct {
	followUserUC        usecases.FollowUserExecutor
	unfollowUserUC      usecases.UnfollowUserExecutor
	listSubscriptionsUC usecases.ListSubscriptionsExecutor
	logger              logger.Interface
}

func NewFollowHandler(
	followUserUC usecases.FollowUserExecutor,
	unfollowUserUC usecases.UnfollowUserExecutor,
	listSubscriptionsUC usecases.ListSubscriptionsExecutor,
) *FollowHandler {
	return &FollowHandler{
		followUserUC:        followUserUC,
		unfollowUserUC:      unfollowUserUC,
		listSubscriptionsUC: listSubscriptionsUC,
		logger:              logger.NewLogger(),
	}
}

// FollowUser handles POST /follow/
func (h *FollowHandler) FollowUser(c *gin.Context) {
	var req FollowUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for follow", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.followUserUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := fmt.Sprintf("You are now following %s", result.FolloweeUsername)
	utils.RedirectResponse(c, http.StatusCreated, message, "/subscriptions/", result)
}

// UnfollowUser handles POST /unfollow/:user_id/
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	followeeID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.UnfollowUserCommand{
		ActorID:    userID.(uint),
		FolloweeID: followeeID,
	}

	result, err := h.unfollowUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusOK, "Unfollowed successfully", "/subscriptions/", result)
}

// ListSubscriptions handles GET /subscriptions/
func (h *FollowHandler) ListSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")
	query := usecases.ListSubscriptionsQuery{ActorID: userID.(uint)}

	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
