package mysql

import (
	"context"
	"time"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
	"github.com/campusfeed/campusfeed-be/util"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postId int64) ([]*model.CommentWithEmail, error) {
	var comments []*model.CommentWithEmail
	if err := cdb.sess.SQL().
		Select("a.*", "b.email").
		From("comments AS a").
		LeftJoin("users AS b").On("a.comment_userid = b.userid").
		Where("a.postid = ?", postId).
		OrderBy("a.commentid").
		IteratorContext(ctx).
		All(&comments); err != nil {
		return nil, &db2.QueryError{Err: err}
	}
	return comments, nil
}

// CreateComment inserts a comment with a server-side timestamp.
func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comments").
		Columns("postid", "comment_userid", "comment_timestamp", "comment").
		Values(req.PostId, req.CommentingUserId, time.Now(), util.XSSSanitize(req.Text)).
		ExecContext(ctx)
	if err != nil {
		return 0, &db2.MutationError{Err: err}
	}
	commentId, err := res.LastInsertId()
	if err != nil {
		return 0, &db2.MutationError{Err: err}
	}
	return commentId, nil
}

func (cdb *CommentDB) GetUserEmail(ctx context.Context, userId int64) (string, error) {
	var row struct {
		Email string `db:"email"`
	}
	if err := cdb.sess.SQL().
		Select("email").
		From("users").
		Where("userid = ?", userId).
		IteratorContext(ctx).
		One(&row); err != nil {
		return "", &db2.QueryError{Err: err}
	}
	return row.Email, nil
}
