// Package inventory models chest-style GUIs: an Inventory of slots, Views
// holding one, and Pages grouping views.
package inventory

import (
	"fmt"
	"sync"

	"github.com/kcaldas/craftkit/pkg/mathutil"
)

const (
	RowSize = 9
	MaxRows = 6
)

// Item is the content of a slot.
type Item struct {
	Material string
	Amount   int
}

func (i Item) IsEmpty() bool { return i.Material == "" || i.Amount <= 0 }

// Inventory is a fixed number of slots, always whole rows.
type Inventory struct {
	title string
	slots []Item
	mu    sync.RWMutex
}

// New snaps size to the closest whole row count between one and six rows.
func New(title string, size int) *Inventory {
	sizes := make([]int, MaxRows)
	for i := range sizes {
		sizes[i] = (i + 1) * RowSize
	}
	return &Inventory{
		title: title,
		slots: make([]Item, mathutil.RoundToClosest(size, sizes...)),
	}
}

func (inv *Inventory) Title() string { return inv.title }
func (inv *Inventory) Size() int     { return len(inv.slots) }

func (inv *Inventory) SetItem(slot int, item Item) error {
	if slot < 0 || slot >= len(inv.slots) {
		return fmt.Errorf("slot %d out of range [0,%d)", slot, len(inv.slots))
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots[slot] = item
	return nil
}

// Item returns the slot content; out of range slots are empty.
func (inv *Inventory) Item(slot int) Item {
	if slot < 0 || slot >= len(inv.slots) {
		return Item{}
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[slot]
}

func (inv *Inventory) Clear() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i := range inv.slots {
		inv.slots[i] = Item{}
	}
}

// Holder is anything backed by an inventory.
type Holder interface {
	Inventory() *Inventory
}

// View is a Holder that lives on a Page.
type View interface {
	Holder
	Page() *Page
	// Dispose drops the page and inventory references.
	Dispose()
	SetInventory(inv *Inventory)
}

// Page groups the views of one screen.
type Page struct {
	title string
	views []View
	mu    sync.Mutex
}

func NewPage(title string) *Page {
	return &Page{title: title}
}

func (p *Page) Title() string { return p.title }

func (p *Page) Add(v View) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.views = append(p.views, v)
}

func (p *Page) Views() []View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]View(nil), p.views...)
}

// Dispose disposes every view and empties the page.
func (p *Page) Dispose() {
	p.mu.Lock()
	views := p.views
	p.views = nil
	p.mu.Unlock()

	for _, v := range views {
		v.Dispose()
	}
}

// BaseView is the default View. Embed it to build custom views.
type BaseView struct {
	page *Page
	inv  *Inventory
}

// NewView creates a view on page and adds it there.
func NewView(page *Page, inv *Inventory) *BaseView {
	v := &BaseView{page: page, inv: inv}
	if page != nil {
		page.Add(v)
	}
	return v
}

func (v *BaseView) Page() *Page                 { return v.page }
func (v *BaseView) Inventory() *Inventory       { return v.inv }
func (v *BaseView) SetInventory(inv *Inventory) { v.inv = inv }

func (v *BaseView) Dispose() {
	v.page = nil
	v.inv = nil
}
