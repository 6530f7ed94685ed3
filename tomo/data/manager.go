package data

import "fmt"

// Manager assigns numeric ids to datasets so configuration trees can
// reference them. Ids start at 1; 0 is never valid.
type Manager struct {
	nextID int
	items  map[int]any
}

// NewManager creates an empty dataset manager.
func NewManager() *Manager {
	return &Manager{nextID: 1, items: make(map[int]any)}
}

// RegisterProjections stores a projection dataset and returns its id.
func (m *Manager) RegisterProjections(p *Projections) int {
	return m.register(p)
}

// RegisterVolume stores a volume dataset and returns its id.
func (m *Manager) RegisterVolume(v *Volume) int {
	return m.register(v)
}

func (m *Manager) register(item any) int {
	id := m.nextID
	m.nextID++
	m.items[id] = item

	return id
}

// Remove drops the dataset with the given id, if any.
func (m *Manager) Remove(id int) {
	delete(m.items, id)
}

// Projections resolves an id to a projection dataset.
func (m *Manager) Projections(id int) (*Projections, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("data: %w: %d", errNotRegistered, id)
	}

	p, ok := item.(*Projections)
	if !ok {
		return nil, fmt.Errorf("data: %w: id %d is not projection data", errWrongKind, id)
	}

	return p, nil
}

// Volume resolves an id to a volume dataset.
func (m *Manager) Volume(id int) (*Volume, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("data: %w: %d", errNotRegistered, id)
	}

	v, ok := item.(*Volume)
	if !ok {
		return nil, fmt.Errorf("data: %w: id %d is not volume data", errWrongKind, id)
	}

	return v, nil
}
