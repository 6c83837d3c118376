package repos

import (
	"github.com/jmoiron/sqlx"

	"turatti/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
  SELECT id, nome, descricao, ativo, ordem, created_at
  FROM categorias
  WHERE ativo = 1
  ORDER BY ordem ASC, created_at DESC`)
	return out, err
}

func (r *CategoryRepo) Get(id int64) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
  SELECT id, nome, descricao, ativo, ordem, created_at
  FROM categorias
  WHERE id = ? AND ativo = 1`, id)
	return c, err
}
