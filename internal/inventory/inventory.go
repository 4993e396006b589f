// Package inventory records what the player has recovered from the world.
// Every item is keyed by its unique ID, so recording the same item twice is a
// no-op and the running score can only ever grow.
package inventory

import (
	"fmt"
	"sort"
	"sync"
)

// Entry is a single recovered item.
type Entry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// Inventory holds all recovered items for a run
type Inventory struct {
	mu sync.RWMutex

	entries map[string]Entry
	order   []string
	score   int

	// OnChange is called after a new item is recorded (for HUD updates)
	OnChange func(Entry)
}

// New creates a new empty inventory
func New() *Inventory {
	return &Inventory{
		entries: make(map[string]Entry),
	}
}

// Record adds an item to the inventory. It returns false, and changes
// nothing, if the ID is empty or has already been recorded.
func (inv *Inventory) Record(id, category string, value int) bool {
	if id == "" {
		return false
	}
	if value < 0 {
		value = 0
	}

	inv.mu.Lock()
	if _, exists := inv.entries[id]; exists {
		inv.mu.Unlock()
		return false
	}
	entry := Entry{ID: id, Category: category, Value: value}
	inv.entries[id] = entry
	inv.order = append(inv.order, id)
	inv.score += value
	inv.mu.Unlock()

	if inv.OnChange != nil {
		inv.OnChange(entry)
	}
	return true
}

// Has checks whether an item has been recorded
func (inv *Inventory) Has(id string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	_, ok := inv.entries[id]
	return ok
}

// Score returns the summed value of all recorded items
func (inv *Inventory) Score() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.score
}

// Count returns the number of recorded items
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.entries)
}

// CountByCategory returns how many recorded items belong to category
func (inv *Inventory) CountByCategory(category string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	n := 0
	for _, e := range inv.entries {
		if e.Category == category {
			n++
		}
	}
	return n
}

// Entries returns recorded items in the order they were recovered
func (inv *Inventory) Entries() []Entry {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := make([]Entry, 0, len(inv.order))
	for _, id := range inv.order {
		result = append(result, inv.entries[id])
	}
	return result
}

// Categories returns the distinct categories present, sorted by name
func (inv *Inventory) Categories() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	seen := make(map[string]bool)
	for _, e := range inv.entries {
		seen[e.Category] = true
	}
	result := make([]string, 0, len(seen))
	for c := range seen {
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}

// Clear empties the inventory and resets the score
func (inv *Inventory) Clear() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.entries = make(map[string]Entry)
	inv.order = nil
	inv.score = 0
}

// Debug returns a string representation of the inventory
func (inv *Inventory) Debug() string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	return fmt.Sprintf("Inventory{%d items, score %d}", len(inv.entries), inv.score)
}
