package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"turatti/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ProductFilter is the catalog list-products filter set. Zero values mean
// "not filtered"; Status is always applied (callers default it to "ativo").
type ProductFilter struct {
	SubcatID     int64
	SubcatIDs    []int64
	OnSaleOnly   bool
	NewOnly      bool
	PaintOnly    bool
	ElectricOnly bool
	Search       string
	Status       string
}

const productCols = `
  id, nome, descricao, preco, promocao_mes, preco_promocao, promocao_data_fim,
  novidade, tipo_tinta, cor_rgb, tipo_eletrico, voltagem, subcategoria_id,
  status, ordem, imagem_principal, imagem_2, created_at`

func (f ProductFilter) where() (string, []any) {
	clauses := []string{`status = ?`}
	args := []any{f.Status}

	if f.OnSaleOnly {
		clauses = append(clauses, `promocao_mes = 1`)
	}
	if f.NewOnly {
		clauses = append(clauses, `novidade = 1`)
	}
	if f.PaintOnly {
		clauses = append(clauses, `tipo_tinta = 1`)
	}
	if f.ElectricOnly {
		clauses = append(clauses, `tipo_eletrico = 1`)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		clauses = append(clauses, `(LOWER(nome) LIKE ? OR LOWER(COALESCE(descricao,'')) LIKE ?)`)
		args = append(args, needle, needle)
	}
	if f.SubcatID != 0 {
		clauses = append(clauses, `subcategoria_id = ?`)
		args = append(args, f.SubcatID)
	}
	if len(f.SubcatIDs) > 0 {
		ph := strings.TrimRight(strings.Repeat("?,", len(f.SubcatIDs)), ",")
		clauses = append(clauses, `subcategoria_id IN (`+ph+`)`)
		for _, id := range f.SubcatIDs {
			args = append(args, id)
		}
	}
	return strings.Join(clauses, " AND "), args
}

func (r *ProductRepo) List(f ProductFilter, limit, offset int) ([]domain.Product, error) {
	where, args := f.where()
	q := `SELECT` + productCols + `
  FROM produtos
  WHERE ` + where + `
  ORDER BY ordem ASC, created_at DESC
  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, q, args...)
	return out, err
}

// Count returns the number of rows matching the full filter set, so that
// pagination totals agree with the page contents.
func (r *ProductRepo) Count(f ProductFilter) (int, error) {
	where, args := f.where()
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM produtos WHERE `+where, args...)
	return n, err
}

// Get returns a single product by id restricted to the given status.
// sql.ErrNoRows is returned for absent or inactive rows.
func (r *ProductRepo) Get(id int64, status string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM produtos WHERE id = ? AND status = ?`, id, status)
	return p, err
}
