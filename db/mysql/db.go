package mysql

import (
	"database/sql"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

type MySQLDB struct {
	*FeedDB
	*PostDB
	*CommentDB
	*MetricsDB
	sess  db.Session
	sqlDB *sql.DB
}

// GetDatabase opens the shared connection pool. The pool is owned by the
// caller and injected into the services; there is no package-level instance.
func GetDatabase(dsn string, maxConns int) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetConnMaxIdleTime(0)

	return NewFromSQLDB(sqlDB)
}

// NewFromSQLDB binds the store to an already opened *sql.DB.
func NewFromSQLDB(sqlDB *sql.DB) (db2.Database, error) {
	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		FeedDB:    getFeedDB(sess),
		PostDB:    getPostDB(sess),
		CommentDB: getCommentDB(sess),
		MetricsDB: getMetricsDB(sqlDB),
		sess:      sess,
		sqlDB:     sqlDB,
	}, nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
