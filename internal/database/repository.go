package database

import "database/sql"

// Repository is the development backend's storage. Tasks are the only
// entity today; new stores embed alongside TaskRepo.
type Repository struct {
	*TaskRepo
}

// NewRepository wraps an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: NewTaskRepo(db),
	}
}
