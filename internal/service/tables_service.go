package service

import "wuddevdet/internal/repository"

type TablesService interface {
	// CountTables reports how many board tables the database holds. Without
	// a database it reports zero.
	CountTables() (int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) CountTables() (int, error) {
	if t.tablesRepo == nil {
		return 0, nil
	}

	countTables, err := t.tablesRepo.CountTablesDB()
	if err != nil {
		return 0, err
	}

	return countTables, nil
}
