package routes

import (
	"github.com/campusfeed/campusfeed-be/app"
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/gin-gonic/gin"
)

type feedRoutes struct {
	feed *app.FeedService
	db   db2.Database
}

func AddFeedRoutes(group *gin.RouterGroup, feed *app.FeedService, db db2.Database) {
	routes := feedRoutes{feed: feed, db: db}
	api := group.Group("/api")
	api.GET("/enhanced-xposts", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
	api.GET("/getlikes", util.HandlerWrapper(routes.getLikes, &util.HandlerOpts{}))
	api.GET("/getTotalMetrics", util.HandlerWrapper(routes.getTotalMetrics, &util.HandlerOpts{}))
	api.GET("/interests", util.HandlerWrapper(routes.getInterests, &util.HandlerOpts{}))
}

// buildFeedQuery maps the loose query string onto the typed filter set.
// Absent and present-but-falsy are distinct for visibility/active.
func buildFeedQuery(c *gin.Context) (*db2.FeedQuery, *util.HTTPError) {
	query := &db2.FeedQuery{
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
	}

	var httpErr *util.HTTPError
	if query.PostId, httpErr = util.OptionalInt64Query(c, "postid"); httpErr != nil {
		return nil, httpErr
	}
	if query.AuthorUserId, httpErr = util.OptionalInt64Query(c, "userid"); httpErr != nil {
		return nil, httpErr
	}
	if query.InterestId, httpErr = util.OptionalInt64Query(c, "interestid"); httpErr != nil {
		return nil, httpErr
	}
	if query.Visibility, httpErr = util.OptionalBoolQuery(c, "visibility"); httpErr != nil {
		return nil, httpErr
	}
	if query.Active, httpErr = util.OptionalBoolQuery(c, "active"); httpErr != nil {
		return nil, httpErr
	}
	if query.CreatedAfter, httpErr = util.OptionalTimeQuery(c, "createTimestamp"); httpErr != nil {
		return nil, httpErr
	}
	if query.UpdatedAfter, httpErr = util.OptionalTimeQuery(c, "updateTimestamp"); httpErr != nil {
		return nil, httpErr
	}

	pageSize, httpErr := util.OptionalInt64Query(c, "num")
	if httpErr != nil {
		return nil, httpErr
	}
	if pageSize != nil {
		query.PageSize = int(*pageSize)
	}
	pageNumber, httpErr := util.OptionalInt64Query(c, "page")
	if httpErr != nil {
		return nil, httpErr
	}
	if pageNumber != nil {
		query.PageNumber = int(*pageNumber)
	}
	return query, nil
}

func (fr *feedRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	query, httpErr := buildFeedQuery(c)
	if httpErr != nil {
		return nil, httpErr
	}
	posts, err := fr.feed.GetFeed(c, query)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"posts": posts}, nil
}

func (fr *feedRoutes) getLikes(c *gin.Context) (interface{}, *util.HTTPError) {
	userId, httpErr := util.OptionalInt64Query(c, "userId")
	if httpErr != nil {
		return nil, httpErr
	}
	if userId == nil {
		return nil, util.BuildMissingParamHTTPErr("userId")
	}
	postIds, err := fr.db.GetLikedPostIds(c, *userId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"likes": postIds}, nil
}

func (fr *feedRoutes) getTotalMetrics(c *gin.Context) (interface{}, *util.HTTPError) {
	userId, httpErr := util.OptionalInt64Query(c, "userId")
	if httpErr != nil {
		return nil, httpErr
	}
	if userId == nil {
		return nil, util.BuildMissingParamHTTPErr("userId")
	}
	metrics, err := fr.db.GetUserMetrics(c, *userId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return metrics, nil
}

func (fr *feedRoutes) getInterests(c *gin.Context) (interface{}, *util.HTTPError) {
	interests, err := fr.db.GetInterests(c)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{"interests": interests}, nil
}
