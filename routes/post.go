package routes

import (
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/gin-gonic/gin"
)

type postRoutes struct {
	db db2.PostDatabase
}

func AddPostRoutes(group *gin.RouterGroup, db db2.PostDatabase) {
	routes := postRoutes{db: db}
	api := group.Group("/api")
	api.POST("/createPosts", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
}

type createPostReq struct {
	AuthorUserId int64  `json:"userId"`
	Header       string `json:"header"`
	Description  string `json:"description"`
	InterestId   *int64 `json:"interestid"`
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createPostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.Header == "" || req.Description == "" || req.InterestId == nil {
		return nil, util.BuildValidationHTTPErr("all fields are required")
	}

	postId, err := pr.db.CreatePost(c, &db2.CreatePost{
		AuthorUserId: req.AuthorUserId,
		Header:       req.Header,
		Description:  req.Description,
		InterestId:   *req.InterestId,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"id": postId}, nil
}
