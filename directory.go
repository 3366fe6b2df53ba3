package itch

import (
	"strings"
	"sync"

	"github.com/huandu/skiplist"
)

// Listing is the latest StockDirectory record seen for one locate code.
type Listing struct {
	Locate    uint16         `json:"locate_code"`
	UpdatedAt TimeOfDay      `json:"updated_at"`
	Directory StockDirectory `json:"directory"`
}

// Symbol returns the listed stock symbol.
func (l Listing) Symbol() string {
	return l.Directory.Stock
}

// Directory resolves locate codes to symbols.
//
// It is fed StockDirectory messages, usually by acting as the sink of a
// Scanner, and answers lookups by locate code and by symbol. Symbols are kept
// ordered so prefix queries and listings come out sorted. Other kinds are
// ignored. Directory is safe for concurrent use.
type Directory struct {
	mu       sync.RWMutex
	byLocate map[uint16]*Listing
	bySymbol *skiplist.SkipList
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{
		byLocate: make(map[uint16]*Listing),
		bySymbol: skiplist.New(skiplist.String),
	}
}

// Apply indexes msg when it is a StockDirectory and reports whether it did.
// A later record for the same locate code or symbol replaces the earlier one.
func (d *Directory) Apply(msg Message) bool {
	sd, ok := msg.Body.(StockDirectory)
	if !ok {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	locate := msg.Locate()
	if prev, ok := d.byLocate[locate]; ok && prev.Directory.Stock != sd.Stock {
		logger.Warn("locate code reassigned", "locate", locate, "from", prev.Directory.Stock, "to", sd.Stock)
		d.bySymbol.Remove(prev.Directory.Stock)
	}
	if el := d.bySymbol.Get(sd.Stock); el != nil {
		if prev, _ := el.Value.(*Listing); prev != nil && prev.Locate != locate {
			logger.Warn("symbol moved to a new locate code", "stock", sd.Stock, "from", prev.Locate, "to", locate)
			delete(d.byLocate, prev.Locate)
		}
	}

	l := &Listing{
		Locate:    locate,
		UpdatedAt: msg.Timestamp(),
		Directory: sd,
	}
	d.byLocate[locate] = l
	d.bySymbol.Set(sd.Stock, l)
	return true
}

// Publish applies every message, which lets a Directory be used as a MessageSink.
func (d *Directory) Publish(msgs ...Message) {
	for _, msg := range msgs {
		d.Apply(msg)
	}
}

// Lookup returns the listing bound to a locate code.
func (d *Directory) Lookup(locate uint16) (Listing, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	l, ok := d.byLocate[locate]
	if !ok {
		return Listing{}, false
	}
	return *l, true
}

// Symbol returns the stock symbol bound to a locate code.
func (d *Directory) Symbol(locate uint16) (string, bool) {
	l, ok := d.Lookup(locate)
	return l.Directory.Stock, ok
}

// Find returns the listing of a symbol.
func (d *Directory) Find(symbol string) (Listing, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el := d.bySymbol.Get(symbol)
	if el == nil {
		return Listing{}, false
	}
	l, _ := el.Value.(*Listing)
	return *l, true
}

// Symbols returns every known symbol in ascending order.
func (d *Directory) Symbols() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, 0, d.bySymbol.Len())
	for el := d.bySymbol.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key().(string))
	}
	return out
}

// Prefix returns the listings whose symbol starts with prefix, ordered by symbol.
func (d *Directory) Prefix(prefix string) []Listing {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Listing
	for el := d.bySymbol.Find(prefix); el != nil; el = el.Next() {
		if !strings.HasPrefix(el.Key().(string), prefix) {
			break
		}
		l, _ := el.Value.(*Listing)
		out = append(out, *l)
	}
	return out
}

// Len returns the number of listings.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byLocate)
}

// Reset drops every listing, as at the start of a new trading day.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byLocate = make(map[uint16]*Listing)
	d.bySymbol = skiplist.New(skiplist.String)
}
