package storage

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

type CRDBPersistence struct {
	connPool *pgxpool.Pool
}

func NewCRDBPersistence(pool *pgxpool.Pool) *CRDBPersistence {
	return &CRDBPersistence{
		connPool: pool,
	}
}

func (crdbp *CRDBPersistence) GetPool() *pgxpool.Pool {
	return crdbp.connPool
}
