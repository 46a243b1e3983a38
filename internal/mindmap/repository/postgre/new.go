package postgre

import (
	"database/sql"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/pkg/log"
)

const tableNodes = "mindmap_nodes"

// implRepository implements repository.Repository on PostgreSQL
type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL repository for the mindmap domain
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
