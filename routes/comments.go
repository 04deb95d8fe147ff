package routes

import (
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/gin-gonic/gin"
)

type commentRoutes struct {
	db db2.CommentDatabase
}

func AddCommentRoutes(group *gin.RouterGroup, db db2.CommentDatabase) {
	routes := commentRoutes{db: db}
	api := group.Group("/api")
	api.GET("/comments", util.HandlerWrapper(routes.getComments, &util.HandlerOpts{}))
	api.POST("/comments", util.HandlerWrapper(routes.postComment, &util.HandlerOpts{}))
}

func (cr *commentRoutes) getComments(c *gin.Context) (interface{}, *util.HTTPError) {
	postId, httpErr := util.OptionalInt64Query(c, "postid")
	if httpErr != nil {
		return nil, httpErr
	}
	if postId == nil {
		// Rejected before any store call.
		return nil, util.BuildMissingParamHTTPErr("postid")
	}
	comments, err := cr.db.GetCommentsForPost(c, *postId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"comments": comments}, nil
}

type postCommentReq struct {
	PostId           int64  `json:"postid"`
	CommentingUserId int64  `json:"comment_userid"`
	Text             string `json:"comment"`
}

func (cr *commentRoutes) postComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req postCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.PostId == 0 || req.CommentingUserId == 0 || req.Text == "" {
		return nil, util.BuildValidationHTTPErr("missing required comment fields")
	}

	commentId, err := cr.db.CreateComment(c, &db2.CreateComment{
		PostId:           req.PostId,
		CommentingUserId: req.CommentingUserId,
		Text:             req.Text,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	email, err := cr.db.GetUserEmail(c, req.CommentingUserId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"commentId": commentId,
		"email":     email,
	}, nil
}
