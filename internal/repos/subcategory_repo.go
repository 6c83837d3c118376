package repos

import (
	"github.com/jmoiron/sqlx"

	"turatti/internal/domain"
)

type SubcategoryRepo struct{ db *sqlx.DB }

func NewSubcategoryRepo(db *sqlx.DB) *SubcategoryRepo { return &SubcategoryRepo{db: db} }

// subcatRow carries the parent category columns from the join.
type subcatRow struct {
	domain.Subcategory
	CatName *string `db:"categoria_nome"`
	CatDesc *string `db:"categoria_descricao"`
}

func (row subcatRow) unpack() domain.Subcategory {
	s := row.Subcategory
	if row.CatName != nil {
		s.Category = &domain.CategoryRef{ID: s.CategoryID, Name: *row.CatName, Description: row.CatDesc}
	}
	return s
}

// List returns active subcategories with the parent category inlined,
// optionally restricted to one category.
func (r *SubcategoryRepo) List(categoryID int64) ([]domain.Subcategory, error) {
	q := `
  SELECT s.id, s.nome, s.descricao, s.categoria_id, s.ativo, s.ordem, s.created_at,
         c.nome AS categoria_nome, c.descricao AS categoria_descricao
  FROM subcategorias s
  JOIN categorias c ON c.id = s.categoria_id
  WHERE s.ativo = 1`
	args := []any{}
	if categoryID != 0 {
		q += ` AND s.categoria_id = ?`
		args = append(args, categoryID)
	}
	q += ` ORDER BY s.ordem ASC, s.nome ASC`

	var rows []subcatRow
	if err := r.db.Select(&rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Subcategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.unpack())
	}
	return out, nil
}

func (r *SubcategoryRepo) Get(id int64) (domain.Subcategory, error) {
	var row subcatRow
	err := r.db.Get(&row, `
  SELECT s.id, s.nome, s.descricao, s.categoria_id, s.ativo, s.ordem, s.created_at,
         c.nome AS categoria_nome, c.descricao AS categoria_descricao
  FROM subcategorias s
  JOIN categorias c ON c.id = s.categoria_id
  WHERE s.id = ? AND s.ativo = 1`, id)
	if err != nil {
		return domain.Subcategory{}, err
	}
	return row.unpack(), nil
}

// ActiveIDs resolves a category to its active subcategory id set. Used by the
// category cascade filter on product listings.
func (r *SubcategoryRepo) ActiveIDs(categoryID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Select(&ids, `SELECT id FROM subcategorias WHERE categoria_id = ? AND ativo = 1`, categoryID)
	return ids, err
}
