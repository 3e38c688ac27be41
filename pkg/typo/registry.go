package typo

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry indexes rules by ID and name.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]*Rule
	byName map[string]*Rule
	stage  map[string]string // rule ID -> stage name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Rule),
		byName: make(map[string]*Rule),
		stage:  make(map[string]string),
	}
}

// RegisterStage adds every rule of s.
func (r *Registry) RegisterStage(s *Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rule := range s.rules {
		r.byID[rule.ID()] = rule
		r.byName[rule.Name()] = rule
		r.stage[rule.ID()] = s.Name()
	}
}

// Resolve returns the canonical ID and rule for an ID or name.
func (r *Registry) Resolve(key string) (string, *Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule.ID(), rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule.ID(), rule, true
	}
	return "", nil, false
}

// StageOf returns the name of the stage a rule was registered from.
func (r *Registry) StageOf(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stage[id]
}

// Canonicalize maps every key to its rule ID. Unknown keys are reported with
// ErrUnknownRule, all at once.
func (r *Registry) Canonicalize(keys []string) ([]string, error) {
	ids := make([]string, 0, len(keys))
	var unknown []string

	for _, k := range keys {
		id, _, ok := r.Resolve(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	if len(unknown) > 0 {
		return ids, fmt.Errorf("%w: %v", ErrUnknownRule, unknown)
	}
	return ids, nil
}

// Rules returns all registered rules sorted by ID.
func (r *Registry) Rules() []*Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b *Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}
