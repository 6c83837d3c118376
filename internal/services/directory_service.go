package services

import (
	"turatti/internal/domain"
	"turatti/internal/repos"
)

// DirectoryService serves stores and their salespeople. Salespeople reads
// degrade to a fixed placeholder roster instead of failing, so the contact
// flow stays usable when that table is unavailable.
type DirectoryService struct {
	Stores *repos.StoreRepo
	Sales  *repos.SalespersonRepo
}

func NewDirectoryService(stores *repos.StoreRepo, sales *repos.SalespersonRepo) *DirectoryService {
	return &DirectoryService{Stores: stores, Sales: sales}
}

func (s *DirectoryService) ListStores() ([]domain.Store, error) {
	stores, err := s.Stores.ListActive()
	if err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	return stores, nil
}

// ListSalespeople returns the active salespeople for a store (0 = all). The
// second return reports whether the placeholder fallback was served; the
// query error is returned alongside it purely for logging.
func (s *DirectoryService) ListSalespeople(storeID int64) ([]domain.Salesperson, bool, error) {
	list, err := s.Sales.ListActive(storeID)
	if err != nil {
		return PlaceholderSalespeople(storeID), true, err
	}
	if list == nil {
		list = []domain.Salesperson{}
	}
	return list, false, nil
}

// PlaceholderSalespeople is the static roster served when the vendedores
// query fails.
func PlaceholderSalespeople(storeID int64) []domain.Salesperson {
	if storeID == 0 {
		storeID = 1
	}
	role := func(s string) *string { return &s }
	return []domain.Salesperson{
		{ID: 1, Name: "João Silva", WhatsApp: "65999887766", Role: role("Consultor de Vendas"), Active: true, StoreID: storeID},
		{ID: 2, Name: "Maria Santos", WhatsApp: "65998776655", Role: role("Especialista em Tintas"), Active: true, StoreID: storeID},
		{ID: 3, Name: "Carlos Oliveira", WhatsApp: "65997665544", Role: role("Especialista em Materiais Elétricos"), Active: true, StoreID: storeID},
		{ID: 4, Name: "Ana Costa", WhatsApp: "65996554433", Role: role("Especialista em Ferramentas"), Active: true, StoreID: storeID},
	}
}
