package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog data if the DB is empty.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS categorias(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  descricao TEXT,
  ativo INTEGER NOT NULL DEFAULT 1,
  ordem INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categorias_nome ON categorias(LOWER(nome));

CREATE TABLE IF NOT EXISTS subcategorias(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  descricao TEXT,
  categoria_id INTEGER NOT NULL REFERENCES categorias(id) ON DELETE RESTRICT,
  ativo INTEGER NOT NULL DEFAULT 1,
  ordem INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_subcategorias_categoria ON subcategorias(categoria_id);

CREATE TABLE IF NOT EXISTS produtos(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  descricao TEXT,
  preco NUMERIC NOT NULL CHECK (preco >= 0),
  promocao_mes INTEGER NOT NULL DEFAULT 0,
  preco_promocao NUMERIC,
  promocao_data_fim TEXT,
  novidade INTEGER NOT NULL DEFAULT 0,
  tipo_tinta INTEGER NOT NULL DEFAULT 0,
  cor_rgb TEXT,
  tipo_eletrico INTEGER NOT NULL DEFAULT 0,
  voltagem TEXT,
  subcategoria_id INTEGER NOT NULL REFERENCES subcategorias(id) ON DELETE RESTRICT,
  status TEXT NOT NULL DEFAULT 'ativo',
  ordem INTEGER NOT NULL DEFAULT 0,
  imagem_principal TEXT,
  imagem_2 TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_produtos_subcategoria ON produtos(subcategoria_id);
CREATE INDEX IF NOT EXISTS idx_produtos_status       ON produtos(status);
CREATE INDEX IF NOT EXISTS idx_produtos_nome         ON produtos(LOWER(nome));

CREATE TABLE IF NOT EXISTS lojas(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  endereco TEXT NOT NULL,
  horario_funcionamento TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'ativa',
  ordem INTEGER NOT NULL DEFAULT 0,
  telefones TEXT NOT NULL DEFAULT '[]',
  imagem_principal TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS vendedores(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  whatsapp TEXT NOT NULL,
  cargo TEXT,
  ativo INTEGER NOT NULL DEFAULT 1,
  loja_id INTEGER NOT NULL REFERENCES lojas(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_vendedores_loja ON vendedores(loja_id);

CREATE TABLE IF NOT EXISTS banners(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  titulo TEXT NOT NULL,
  descricao TEXT,
  imagem_url TEXT NOT NULL,
  link_destino TEXT,
  ativo INTEGER NOT NULL DEFAULT 1,
  ordem INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS redes_sociais(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  link TEXT NOT NULL,
  icone TEXT NOT NULL,
  ativo INTEGER NOT NULL DEFAULT 1,
  ordem INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS logos(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nome TEXT NOT NULL,
  tipo TEXT NOT NULL,
  posicao TEXT NOT NULL,
  imagem_url TEXT NOT NULL,
  ativo INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categorias`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog data")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categorias(id,nome,descricao,ativo,ordem) VALUES
	  (1,'Tintas','Tintas, vernizes e acessórios de pintura',1,1),
	  (2,'Elétrica','Materiais elétricos e iluminação',1,2),
	  (3,'Hidráulica','Tubos, conexões e registros',1,3)`)

	tx.MustExec(`INSERT INTO subcategorias(id,nome,categoria_id,ativo,ordem) VALUES
	  (1,'Tintas Acrílicas',1,1,1),
	  (2,'Esmaltes e Vernizes',1,1,2),
	  (3,'Fios e Cabos',2,1,1),
	  (4,'Iluminação',2,1,2),
	  (5,'Conexões PVC',3,1,1)`)

	tx.MustExec(`INSERT INTO produtos(nome,descricao,preco,promocao_mes,preco_promocao,promocao_data_fim,novidade,tipo_tinta,cor_rgb,tipo_eletrico,voltagem,subcategoria_id,ordem,imagem_principal) VALUES
	  ('Tinta Acrílica Premium Fosca 18L','Acabamento fosco de alta cobertura',389.90,1,299.90,'2026-12-31T23:59:59Z',0,1,'#f5f5f0',0,NULL,1,1,'produtos/tinta-premium-18l.jpg'),
	  ('Tinta Acrílica Standard 3,6L','Uso interno e externo',89.90,0,NULL,NULL,1,1,'#e8e4d8',0,NULL,1,2,'produtos/tinta-standard-36l.jpg'),
	  ('Verniz Marítimo 900ml','Proteção para madeira exposta',54.50,0,NULL,NULL,0,1,NULL,0,NULL,2,1,'produtos/verniz-maritimo.jpg'),
	  ('Cabo Flexível 2,5mm 100m','Rolo antichama 750V',219.00,1,184.90,'2026-10-15T23:59:59Z',0,0,NULL,1,'750V',3,1,'produtos/cabo-25mm.jpg'),
	  ('Luminária LED Sobrepor 24W','Luz branca neutra',79.90,0,NULL,NULL,1,0,NULL,1,'bivolt',4,1,'produtos/luminaria-led-24w.jpg'),
	  ('Joelho PVC 90° 25mm','Conexão soldável',1.80,0,NULL,NULL,0,0,NULL,0,NULL,5,1,NULL)`)

	tx.MustExec(`INSERT INTO lojas(id,nome,endereco,horario_funcionamento,ordem,telefones) VALUES
	  (1,'Turatti Centro','Av. Governador Júlio Campos, 1234 - Centro','Seg-Sex 7h30-18h, Sáb 7h30-12h',1,'["6532221100","6532221101"]'),
	  (2,'Turatti Jardim das Palmeiras','Rua das Palmeiras, 567','Seg-Sex 7h30-18h',2,'["6533445566"]')`)

	tx.MustExec(`INSERT INTO vendedores(nome,whatsapp,cargo,loja_id) VALUES
	  ('João Silva','65999887766','Consultor de Vendas',1),
	  ('Maria Santos','65998776655','Especialista em Tintas',1),
	  ('Carlos Oliveira','65997665544','Especialista em Materiais Elétricos',2),
	  ('Ana Costa','65996554433','Especialista em Ferramentas',2)`)

	tx.MustExec(`INSERT INTO banners(titulo,descricao,imagem_url,link_destino,ordem) VALUES
	  ('Mês da Pintura','Tintas selecionadas com até 30% de desconto','banners/mes-da-pintura.jpg','/produtos?tipo_tinta=true',1),
	  ('Novidades em Iluminação',NULL,'banners/iluminacao.jpg','/produtos?novidade=true',2)`)

	tx.MustExec(`INSERT INTO redes_sociais(nome,link,icone,ordem) VALUES
	  ('Facebook','https://facebook.com/turattimt','facebook',1),
	  ('Instagram','https://instagram.com/turattimt','instagram',2),
	  ('WhatsApp','https://wa.me/5565999887766','whatsapp',3)`)

	tx.MustExec(`INSERT INTO logos(nome,tipo,posicao,imagem_url) VALUES
	  ('Logo principal','claro','header','logos/turatti-claro.png'),
	  ('Logo rodapé','escuro','footer','logos/turatti-escuro.png')`)

	return tx.Commit()
}
