package follow

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/follow/usecases"
	"revu/internal/shared/errors"
)

type FollowUserRequest struct {
	Username string `json:"username" binding:"required,max=30"`
}

func (r *FollowUserRequest) ToCommand(actorID uint) usecases.FollowUserCommand {
	return usecases.FollowUserCommand{
		ActorID:  actorID,
		Username: r.Username,
	}
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid user ID")
	}
	return uint(id), nil
}
