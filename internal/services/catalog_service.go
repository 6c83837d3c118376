package services

import (
	"turatti/internal/domain"
	"turatti/internal/repos"
)

type CatalogService struct {
	Cats    *repos.CategoryRepo
	Subcats *repos.SubcategoryRepo
	Prods   *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, subcats *repos.SubcategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Subcats: subcats, Prods: prods}
}

// ProductQuery is the full list-products parameter set after validation.
type ProductQuery struct {
	CategoryID   int64
	SubcatID     int64
	SubcatIDs    []int64
	OnSaleOnly   bool
	NewOnly      bool
	PaintOnly    bool
	ElectricOnly bool
	Search       string
	Status       string
	Page         int
	Limit        int
}

const DefaultPageSize = 12

// ListProducts applies the category cascade, pagination math and sorting and
// returns one page plus its envelope. When a category is given with no
// subcategory filter, products are restricted to the category's active
// subcategory set; an empty set yields an empty page.
func (s *CatalogService) ListProducts(q ProductQuery) ([]domain.Product, domain.Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Status == "" {
		q.Status = "ativo"
	}

	f := repos.ProductFilter{
		SubcatID:     q.SubcatID,
		SubcatIDs:    q.SubcatIDs,
		OnSaleOnly:   q.OnSaleOnly,
		NewOnly:      q.NewOnly,
		PaintOnly:    q.PaintOnly,
		ElectricOnly: q.ElectricOnly,
		Search:       q.Search,
		Status:       q.Status,
	}

	if q.CategoryID != 0 && q.SubcatID == 0 && len(q.SubcatIDs) == 0 {
		ids, err := s.Subcats.ActiveIDs(q.CategoryID)
		if err != nil {
			return nil, domain.Pagination{}, err
		}
		if len(ids) == 0 {
			return []domain.Product{}, paginate(q.Page, q.Limit, 0), nil
		}
		f.SubcatIDs = ids
	}

	total, err := s.Prods.Count(f)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Limit
	items, err := s.Prods.List(f, q.Limit, offset)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, paginate(q.Page, q.Limit, total), nil
}

func paginate(page, limit, total int) domain.Pagination {
	totalPages := (total + limit - 1) / limit
	return domain.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// GetProduct returns an active product with its subcategory and that
// subcategory's category nested. sql.ErrNoRows is passed through for the
// handler's 404.
func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id, "ativo")
	if err != nil {
		return domain.Product{}, err
	}
	sub, err := s.Subcats.Get(p.SubcatID)
	if err == nil {
		p.Subcategory = &sub
	}
	return p, nil
}

// ListCategories returns active categories, optionally with each one's active
// subcategories inlined.
func (s *CatalogService) ListCategories(includeSubcats bool) ([]domain.Category, error) {
	cats, err := s.Cats.List()
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	if !includeSubcats {
		return cats, nil
	}
	subs, err := s.Subcats.List(0)
	if err != nil {
		return nil, err
	}
	byCat := make(map[int64][]domain.Subcategory, len(cats))
	for _, sub := range subs {
		sub.Category = nil // avoid echoing the parent inside its own category
		byCat[sub.CategoryID] = append(byCat[sub.CategoryID], sub)
	}
	for i := range cats {
		if list := byCat[cats[i].ID]; list != nil {
			cats[i].Subcategories = list
		} else {
			cats[i].Subcategories = []domain.Subcategory{}
		}
	}
	return cats, nil
}

func (s *CatalogService) GetCategory(id int64) (domain.Category, error) {
	return s.Cats.Get(id)
}

func (s *CatalogService) ListSubcategories(categoryID int64) ([]domain.Subcategory, error) {
	subs, err := s.Subcats.List(categoryID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Subcategory{}
	}
	return subs, nil
}

func (s *CatalogService) GetSubcategory(id int64) (domain.Subcategory, error) {
	return s.Subcats.Get(id)
}
