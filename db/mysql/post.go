package mysql

import (
	"context"
	"time"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

// CreatePost inserts a post. Both timestamps are generated here and new
// posts are always visible and active.
func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	now := time.Now()
	res, err := pdb.sess.SQL().
		InsertInto("posts").
		Columns("userid", "create_timestamp", "last_update_timestamp", "interestid",
			"header", "description", "visibility", "active").
		Values(req.AuthorUserId, now, now, req.InterestId,
			util.XSSSanitize(req.Header), util.XSSSanitize(req.Description), true, true).
		ExecContext(ctx)
	if err != nil {
		return 0, &db2.MutationError{Err: err}
	}
	postId, err := res.LastInsertId()
	if err != nil {
		return 0, &db2.MutationError{Err: err}
	}
	return postId, nil
}

func (pdb *PostDB) GetInterests(ctx context.Context) ([]*model.Interest, error) {
	var interests []*model.Interest
	if err := pdb.sess.SQL().
		Select("*").
		From("interest").
		IteratorContext(ctx).
		All(&interests); err != nil {
		return nil, &db2.QueryError{Err: err}
	}
	return interests, nil
}
