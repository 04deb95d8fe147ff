package mysql

import (
	"database/sql"

	"github.com/campusfeed/campusfeed-be/model"
)

func buildMutationResult(res sql.Result) (*model.MutationResult, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	// Composite-key tables report 0 here; that is fine.
	insertId, err := res.LastInsertId()
	if err != nil {
		insertId = 0
	}
	return &model.MutationResult{
		RowsAffected: rows,
		InsertId:     insertId,
	}, nil
}
