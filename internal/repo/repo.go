package repo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func (r *GormRepo) Migrate() error {
	return r.DB.AutoMigrate(models.All()...)
}

// forUpdate adds a row lock on dialects that have one. The sqlite
// driver used in tests has no FOR UPDATE syntax and serializes writes
// on its own.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
