package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/feed/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type FeedHandler struct {
	composeFeedUC usecases.ComposeFeedExecutor
	logger        logger.Interface
}

func NewFeedHandler(composeFeedUC usecases.ComposeFeedExecutor) *FeedHandler {
	return &FeedHandler{
		composeFeedUC: composeFeedUC,
		logger:        logger.NewLogger(),
	}
}

// Feed handles GET / with the posts of the viewer and everyone they follow.
func (h *FeedHandler) Feed(c *gin.Context) {
	h.serveFeed(c, usecases.ScopeAll)
}

// OwnPosts handles GET /posts/ with only the viewer's posts.
func (h *FeedHandler) OwnPosts(c *gin.Context) {
	h.serveFeed(c, usecases.ScopeSelf)
}

func (h *FeedHandler) serveFeed(c *gin.Context, scope usecases.Scope) {
	userID, _ := c.Get("user_id")
	query := usecases.ComposeFeedQuery{
		ViewerID: userID.(uint),
		Scope:    scope,
	}

	result, err := h.composeFeedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
