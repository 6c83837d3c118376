package services

import (
	"testing"

	"turatti/internal/repos"
)

func newDirectory(t *testing.T) (*DirectoryService, func(query string, args ...any)) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}
	return NewDirectoryService(repos.NewStoreRepo(db), repos.NewSalespersonRepo(db)), exec
}

func TestListStoresParsesPhones(t *testing.T) {
	svc, exec := newDirectory(t)
	exec(`INSERT INTO lojas(nome,endereco,status,ordem) VALUES ('Fechada','Rua X','inativa',0)`)

	stores, err := svc.ListStores()
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 2 {
		t.Fatalf("inactive stores must be filtered; len=%d", len(stores))
	}
	if stores[0].Name != "Turatti Centro" {
		t.Fatalf("stores must come back in ordem: %s first", stores[0].Name)
	}
	if len(stores[0].Phones) != 2 || stores[0].Phones[0] != "6532221100" {
		t.Fatalf("phones = %v", stores[0].Phones)
	}
}

func TestListSalespeopleByStore(t *testing.T) {
	svc, exec := newDirectory(t)
	exec(`UPDATE vendedores SET ativo = 0 WHERE nome = 'Maria Santos'`)

	people, fellBack, err := svc.ListSalespeople(1)
	if err != nil || fellBack {
		t.Fatalf("err=%v fallback=%v", err, fellBack)
	}
	if len(people) != 1 || people[0].Name != "João Silva" {
		t.Fatalf("people = %+v", people)
	}

	all, _, err := svc.ListSalespeople(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("storeID 0 must list every active salesperson; len=%d", len(all))
	}
}

func TestListSalespeopleFallsBackOnQueryError(t *testing.T) {
	svc, exec := newDirectory(t)
	exec(`DROP TABLE vendedores`)

	people, fellBack, err := svc.ListSalespeople(2)
	if err == nil {
		t.Fatal("the underlying query error must surface for logging")
	}
	if !fellBack {
		t.Fatal("a failed read must be flagged as fallback")
	}
	if len(people) != 4 {
		t.Fatalf("placeholder roster has 4 entries, got %d", len(people))
	}
	for _, p := range people {
		if p.StoreID != 2 {
			t.Fatalf("placeholder entries keep the requested store; got %d", p.StoreID)
		}
		if p.WhatsApp == "" || p.Role == nil {
			t.Fatalf("placeholder entry incomplete: %+v", p)
		}
	}
}
