// Package contact implements the two-screen "talk to a salesperson" popup
// flow: pick a store, pick one of its salespeople, hand off to an outbound
// chat link.
package contact

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"turatti/internal/domain"
)

type State int

const (
	Closed State = iota
	SelectingStore
	SelectingSalesperson
)

func (s State) String() string {
	switch s {
	case SelectingStore:
		return "selecting_store"
	case SelectingSalesperson:
		return "selecting_salesperson"
	default:
		return "closed"
	}
}

// Directory is the slice of the query contract the flow depends on. The
// salesperson read follows the fallback contract: on backend failure it
// still yields a usable roster, flagged as such.
type Directory interface {
	ListStores() ([]domain.Store, error)
	ListSalespeople(storeID int64) ([]domain.Salesperson, bool, error)
}

// Flow is one popup session. Nothing persists across Close; every reopen
// refetches stores from scratch.
type Flow struct {
	mu  sync.Mutex
	dir Directory

	state       State
	sessionID   string
	productName string

	stores      []domain.Store
	store       *domain.Store
	salespeople []domain.Salesperson
	fallback    bool
}

func NewFlow(dir Directory) *Flow {
	return &Flow{dir: dir}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SessionID identifies the current popup session in logs; empty while closed.
func (f *Flow) SessionID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessionID
}

func (f *Flow) Stores() []domain.Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stores
}

// Salespeople returns the loaded roster and whether it is the placeholder
// fallback.
func (f *Flow) Salespeople() ([]domain.Salesperson, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.salespeople, f.fallback
}

// Open transitions Closed -> SelectingStore and fetches the active stores.
// productName, when non-empty, seeds the prefilled chat message.
func (f *Flow) Open(productName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Closed {
		return fmt.Errorf("contact: open from %s", f.state)
	}
	stores, err := f.dir.ListStores()
	if err != nil {
		return err
	}
	f.state = SelectingStore
	f.sessionID = uuid.NewString()
	f.productName = productName
	f.stores = stores
	return nil
}

// SelectStore transitions to SelectingSalesperson and loads that store's
// roster.
func (f *Flow) SelectStore(store domain.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != SelectingStore {
		return fmt.Errorf("contact: select store from %s", f.state)
	}
	people, fellBack, err := f.dir.ListSalespeople(store.ID)
	if err != nil && !fellBack {
		return err
	}
	f.state = SelectingSalesperson
	f.store = &store
	f.salespeople = people
	f.fallback = fellBack
	return nil
}

// Back returns to store selection, discarding the loaded roster.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != SelectingSalesperson {
		return
	}
	f.state = SelectingStore
	f.store = nil
	f.salespeople = nil
	f.fallback = false
}

// SelectSalesperson builds the outbound chat deep link for the handoff and
// closes the flow. The caller opens the returned URL in a new context.
func (f *Flow) SelectSalesperson(p domain.Salesperson) (string, error) {
	f.mu.Lock()
	if f.state != SelectingSalesperson {
		f.mu.Unlock()
		return "", fmt.Errorf("contact: select salesperson from %s", f.state)
	}
	link := ChatLink(p.WhatsApp, f.productName)
	f.reset()
	f.mu.Unlock()
	return link, nil
}

// Close discards all selection state from any state.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flow) reset() {
	f.state = Closed
	f.sessionID = ""
	f.productName = ""
	f.stores = nil
	f.store = nil
	f.salespeople = nil
	f.fallback = false
}

// ChatLink builds the wa.me deep link with the prefilled inquiry message.
// The handle is used verbatim after the country prefix.
func ChatLink(handle, productName string) string {
	msg := "Olá! Gostaria de mais informações sobre os produtos da TurattiMT."
	if productName != "" {
		msg = "Olá! Gostaria de mais informações sobre o produto: " + productName
	}
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/55" + handle + "?text=" + encoded
}
