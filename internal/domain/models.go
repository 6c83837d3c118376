package domain

// Read-only projections of the hosted catalog tables. Wire names (json tags)
// follow the backend's Portuguese column names; the app never mutates rows.

type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Description *string `db:"descricao" json:"descricao,omitempty"`
	Active      bool    `db:"ativo" json:"ativo"`
	Order       int     `db:"ordem" json:"ordem"`
	CreatedAt   string  `db:"created_at" json:"created_at"`

	// Populated only when the caller asks for inlined subcategories.
	Subcategories []Subcategory `db:"-" json:"subcategorias,omitempty"`
}

type Subcategory struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Description *string `db:"descricao" json:"descricao,omitempty"`
	CategoryID  int64   `db:"categoria_id" json:"categoria_id"`
	Active      bool    `db:"ativo" json:"ativo"`
	Order       int     `db:"ordem" json:"ordem"`
	CreatedAt   string  `db:"created_at" json:"created_at"`

	// Parent join, inlined on subcategory reads. Key matches the backend's
	// embedded-resource naming.
	Category *CategoryRef `db:"-" json:"categorias,omitempty"`
}

// CategoryRef is the slim parent shape embedded in subcategory responses.
type CategoryRef struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Description *string `db:"descricao" json:"descricao,omitempty"`
}

type Product struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"nome" json:"nome"`
	Description  *string  `db:"descricao" json:"descricao,omitempty"`
	Price        float64  `db:"preco" json:"preco"`
	OnSale       bool     `db:"promocao_mes" json:"promocao_mes"`
	SalePrice    *float64 `db:"preco_promocao" json:"preco_promocao,omitempty"`
	SaleEndsAt   *string  `db:"promocao_data_fim" json:"promocao_data_fim,omitempty"`
	IsNew        bool     `db:"novidade" json:"novidade"`
	IsPaint      bool     `db:"tipo_tinta" json:"tipo_tinta"`
	PaintColor   *string  `db:"cor_rgb" json:"cor_rgb,omitempty"`
	IsElectrical bool     `db:"tipo_eletrico" json:"tipo_eletrico"`
	Voltage      *string  `db:"voltagem" json:"voltagem,omitempty"`
	SubcatID     int64    `db:"subcategoria_id" json:"subcategoria_id"`
	Status       string   `db:"status" json:"status"`
	Order        int      `db:"ordem" json:"ordem"`
	ImageMain    *string  `db:"imagem_principal" json:"imagem_principal,omitempty"`
	ImageAlt     *string  `db:"imagem_2" json:"imagem_2,omitempty"`
	CreatedAt    string   `db:"created_at" json:"created_at"`

	// Nested subcategory (with its category) on detail reads.
	Subcategory *Subcategory `db:"-" json:"subcategorias,omitempty"`
}

type Store struct {
	ID        int64    `db:"id" json:"id"`
	Name      string   `db:"nome" json:"nome"`
	Address   string   `db:"endereco" json:"endereco"`
	Hours     string   `db:"horario_funcionamento" json:"horario_funcionamento"`
	Status    string   `db:"status" json:"status"`
	Order     int      `db:"ordem" json:"ordem"`
	Phones    []string `db:"-" json:"telefones,omitempty"`
	PhonesRaw string   `db:"telefones" json:"-"` // JSON array as stored
	ImageMain *string  `db:"imagem_principal" json:"imagem_principal,omitempty"`
	CreatedAt string   `db:"created_at" json:"created_at"`
}

type Salesperson struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"nome" json:"nome"`
	WhatsApp  string  `db:"whatsapp" json:"whatsapp"` // digits only, used verbatim in the deep link
	Role      *string `db:"cargo" json:"cargo,omitempty"`
	Active    bool    `db:"ativo" json:"ativo"`
	StoreID   int64   `db:"loja_id" json:"loja_id"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type Banner struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"titulo" json:"titulo"`
	Description *string `db:"descricao" json:"descricao,omitempty"`
	ImageURL    string  `db:"imagem_url" json:"imagem_url"`
	LinkTo      *string `db:"link_destino" json:"link_destino,omitempty"`
	Active      bool    `db:"ativo" json:"ativo"`
	Order       int     `db:"ordem" json:"ordem"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

type SocialLink struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"nome" json:"nome"`
	URL       string `db:"link" json:"link"`
	Icon      string `db:"icone" json:"icone"`
	Active    bool   `db:"ativo" json:"ativo"`
	Order     int    `db:"ordem" json:"ordem"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type Logo struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"nome" json:"nome"`
	Variant   string `db:"tipo" json:"tipo"`       // claro | escuro
	Placement string `db:"posicao" json:"posicao"` // header | footer | ...
	ImageURL  string `db:"imagem_url" json:"imagem_url"`
	Active    bool   `db:"ativo" json:"ativo"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Pagination is the list-products page envelope.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}
