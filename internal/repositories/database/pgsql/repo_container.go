package pgsql

import (
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:      newPgxShiftRepository(dbPool),
		ShiftEventRepo: newPgxShiftEventRepository(dbPool),
		SaleRepo:       newPgxSaleRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		OperatorRepo:   newPgxOperatorRepository(dbPool),
		Health:         &BaseRepository{Pool: dbPool},
	}
}
