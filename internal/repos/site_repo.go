package repos

import (
	"github.com/jmoiron/sqlx"

	"turatti/internal/domain"
)

// SiteRepo serves the small presentation tables: banners, social links, logos.
type SiteRepo struct{ db *sqlx.DB }

func NewSiteRepo(db *sqlx.DB) *SiteRepo { return &SiteRepo{db: db} }

func (r *SiteRepo) ListBanners(active bool) ([]domain.Banner, error) {
	var out []domain.Banner
	err := r.db.Select(&out, `
  SELECT id, titulo, descricao, imagem_url, link_destino, ativo, ordem, created_at
  FROM banners
  WHERE ativo = ?
  ORDER BY ordem ASC, created_at DESC`, active)
	return out, err
}

func (r *SiteRepo) ListSocialLinks() ([]domain.SocialLink, error) {
	var out []domain.SocialLink
	err := r.db.Select(&out, `
  SELECT id, nome, link, icone, ativo, ordem, created_at
  FROM redes_sociais
  WHERE ativo = 1
  ORDER BY ordem ASC, created_at DESC`)
	return out, err
}

// ListLogos filters active logos by variant and placement; empty strings mean
// "any".
func (r *SiteRepo) ListLogos(variant, placement string) ([]domain.Logo, error) {
	q := `
  SELECT id, nome, tipo, posicao, imagem_url, ativo, created_at
  FROM logos
  WHERE ativo = 1`
	args := []any{}
	if variant != "" {
		q += ` AND tipo = ?`
		args = append(args, variant)
	}
	if placement != "" {
		q += ` AND posicao = ?`
		args = append(args, placement)
	}

	var out []domain.Logo
	err := r.db.Select(&out, q, args...)
	return out, err
}
