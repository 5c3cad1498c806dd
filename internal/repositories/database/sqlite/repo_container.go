package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on one SQLite handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		ShiftRepo:      &ShiftRepository{BaseRepository: base},
		ShiftEventRepo: &ShiftEventRepository{BaseRepository: base},
		SaleRepo:       &SaleRepository{BaseRepository: base},
		ExpenseRepo:    &ExpenseRepository{BaseRepository: base},
		OperatorRepo:   &OperatorRepository{BaseRepository: base},
		Health:         &base,
	}
}
