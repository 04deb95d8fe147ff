package routes

import (
	"errors"

	"github.com/campusfeed/campusfeed-be/app"
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/gin-gonic/gin"
)

type likeRoutes struct {
	likes *app.LikeService
}

func AddLikeRoutes(group *gin.RouterGroup, likes *app.LikeService) {
	routes := likeRoutes{likes: likes}
	api := group.Group("/api")
	api.POST("/addLikes", util.HandlerWrapper(routes.addLikes, &util.HandlerOpts{}))
}

type addLikesReq struct {
	PostId        int64  `json:"postid" binding:"required"`
	LikingUserId  int64  `json:"like_userid" binding:"required"`
	LikeTimestamp string `json:"like_timestamp"`
	Add           bool   `json:"add_operation"`
}

func (lr *likeRoutes) addLikes(c *gin.Context) (interface{}, *util.HTTPError) {
	var req addLikesReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}

	mutation := &db2.LikeMutation{
		PostId:       req.PostId,
		LikingUserId: req.LikingUserId,
		Add:          req.Add,
	}
	if req.Add {
		likeTimestamp, err := util.ParseTime(req.LikeTimestamp)
		if err != nil {
			return nil, util.BuildValidationHTTPErr("like_timestamp must be a timestamp")
		}
		mutation.LikeTimestamp = likeTimestamp
	}

	result, err := lr.likes.ApplyLike(c, mutation)
	if err != nil {
		var validationErr *db2.ValidationError
		if errors.As(err, &validationErr) {
			return nil, util.BuildValidationHTTPErr(validationErr.Message)
		}
		if db2.IsDupKeyErr(err) {
			return nil, util.BuildConflictHTTPErr("like already exists")
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"likes": result}, nil
}
