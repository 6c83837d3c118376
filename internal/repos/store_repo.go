package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"turatti/internal/domain"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) ListActive() ([]domain.Store, error) {
	var out []domain.Store
	err := r.db.Select(&out, `
  SELECT id, nome, endereco, horario_funcionamento, status, ordem, telefones,
         imagem_principal, created_at
  FROM lojas
  WHERE status = 'ativa'
  ORDER BY ordem ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	for i := range out {
		// telefones is stored as a JSON array; a malformed value just yields
		// an empty list.
		_ = json.Unmarshal([]byte(out[i].PhonesRaw), &out[i].Phones)
	}
	return out, nil
}

type SalespersonRepo struct{ db *sqlx.DB }

func NewSalespersonRepo(db *sqlx.DB) *SalespersonRepo { return &SalespersonRepo{db: db} }

// ListActive returns active salespeople sorted by name, optionally filtered
// to one store.
func (r *SalespersonRepo) ListActive(storeID int64) ([]domain.Salesperson, error) {
	q := `
  SELECT id, nome, whatsapp, cargo, ativo, loja_id, created_at
  FROM vendedores
  WHERE ativo = 1`
	args := []any{}
	if storeID != 0 {
		q += ` AND loja_id = ?`
		args = append(args, storeID)
	}
	q += ` ORDER BY nome ASC`

	var out []domain.Salesperson
	err := r.db.Select(&out, q, args...)
	return out, err
}
