// Package vendors holds the marketplace source registry. Adding a new
// source means implementing domain.Vendor and registering it here; the
// orchestrator never references concrete vendor types.
package vendors

import (
	"log"

	"github.com/fynda/backend/internal/domain"
)

// Config describes one registered vendor.
type Config struct {
	ID       string
	Name     string
	Category string
	Priority float64
	Enabled  bool
}

type registration struct {
	config Config
	vendor domain.Vendor
}

// Registry maps vendor identifiers to implementations plus their
// ranking priority. It is populated once at startup and read-only
// afterwards.
type Registry struct {
	order []registration
	byID  map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]int)}
}

// Register adds a vendor under its config. Registering the same ID
// twice replaces the earlier entry.
func (r *Registry) Register(cfg Config, vendor domain.Vendor) {
	if idx, ok := r.byID[cfg.ID]; ok {
		r.order[idx] = registration{config: cfg, vendor: vendor}
		return
	}
	r.byID[cfg.ID] = len(r.order)
	r.order = append(r.order, registration{config: cfg, vendor: vendor})
}

// Enabled returns the vendors that are both enabled in config and
// report themselves configured, in registration order.
func (r *Registry) Enabled() []domain.Vendor {
	out := make([]domain.Vendor, 0, len(r.order))
	for _, reg := range r.order {
		if !reg.config.Enabled {
			continue
		}
		if !reg.vendor.IsConfigured() {
			log.Printf("[VENDORS] %s enabled but not configured, skipping", reg.config.ID)
			continue
		}
		out = append(out, reg.vendor)
	}
	return out
}

// SourceBonuses maps vendor display names to their ranking priority,
// for the orchestrator's per-source score bonus.
func (r *Registry) SourceBonuses() map[string]float64 {
	out := make(map[string]float64, len(r.order))
	for _, reg := range r.order {
		out[reg.config.Name] = reg.config.Priority
	}
	return out
}

// Status reports every registered vendor, including disabled and
// unconfigured ones, in registration order.
func (r *Registry) Status() []domain.VendorStatus {
	out := make([]domain.VendorStatus, 0, len(r.order))
	for _, reg := range r.order {
		out = append(out, domain.VendorStatus{
			ID:         reg.config.ID,
			Name:       reg.config.Name,
			Category:   reg.config.Category,
			Priority:   reg.config.Priority,
			Enabled:    reg.config.Enabled,
			Configured: reg.vendor.IsConfigured(),
		})
	}
	return out
}

// Get returns a vendor by ID.
func (r *Registry) Get(id string) (domain.Vendor, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return r.order[idx].vendor, true
}
