package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
)

// memoryStore keeps screens in process. It backs handler tests and local
// runs without Postgres.
type memoryStore struct {
	mu      sync.RWMutex
	nextID  int
	screens map[int]model.Screen
	now     func() time.Time
}

var _ Store = (*memoryStore)(nil)

func NewMemoryStore() Store {
	return &memoryStore{nextID: 1, screens: map[int]model.Screen{}, now: time.Now}
}

func (m *memoryStore) sorted(keep func(model.Screen) bool) []model.Screen {
	out := make([]model.Screen, 0, len(m.screens))
	for _, s := range m.screens {
		if keep(s) {
			out = append(out, detach(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryStore) ListScreens(_ context.Context) ([]model.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(func(model.Screen) bool { return true }), nil
}

func (m *memoryStore) ListPairedScreens(_ context.Context) ([]model.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(func(s model.Screen) bool { return s.Paired && s.DeviceID != nil }), nil
}

func (m *memoryStore) GetScreenByID(_ context.Context, id int) (model.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.screens[id]
	if !ok {
		return model.Screen{}, ErrNotFound
	}
	return detach(s), nil
}

func (m *memoryStore) GetScreenByDeviceID(_ context.Context, deviceID string) (model.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.screens {
		if s.DeviceID != nil && *s.DeviceID == deviceID {
			return detach(s), nil
		}
	}
	return model.Screen{}, ErrNotFound
}

func (m *memoryStore) IsDevicePaired(ctx context.Context, deviceID string) (bool, error) {
	s, err := m.GetScreenByDeviceID(ctx, deviceID)
	if err != nil {
		return false, nil
	}
	return s.Paired, nil
}

func (m *memoryStore) CreateScreen(_ context.Context, in model.Screen) (model.Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now().UTC()
	in.ID = m.nextID
	in.City = cloneString(in.City)
	in.DeviceID = nil
	in.Paired = false
	if in.Method == "" {
		in.Method = "Turkey"
	}
	in.CreatedAt, in.UpdatedAt = now, now
	m.screens[in.ID] = in
	m.nextID++
	return detach(in), nil
}

func (m *memoryStore) UpdateScreen(_ context.Context, id int, f ScreenFields) (model.Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return model.Screen{}, ErrNotFound
	}
	if f.Name != nil {
		s.Name = *f.Name
	}
	if f.City != nil {
		s.City = cloneString(f.City)
	}
	if f.Latitude != nil {
		s.Latitude = *f.Latitude
	}
	if f.Longitude != nil {
		s.Longitude = *f.Longitude
	}
	if f.UTCOffsetMinutes != nil {
		s.UTCOffsetMinutes = *f.UTCOffsetMinutes
	}
	if f.Method != nil {
		s.Method = *f.Method
	}
	s.UpdatedAt = m.now().UTC()
	m.screens[id] = s
	return detach(s), nil
}

func (m *memoryStore) PairScreen(_ context.Context, id int, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.screens {
		if other.ID != id && other.DeviceID != nil && *other.DeviceID == deviceID {
			return ErrDeviceTaken
		}
	}
	s, ok := m.screens[id]
	if !ok {
		return ErrNotFound
	}
	s.DeviceID = cloneString(&deviceID)
	s.Paired = true
	s.UpdatedAt = m.now().UTC()
	m.screens[id] = s
	return nil
}

func (m *memoryStore) DeleteScreen(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.screens[id]; !ok {
		return ErrNotFound
	}
	delete(m.screens, id)
	return nil
}

// detach copies the string pointers so callers never share them with the map.
func detach(s model.Screen) model.Screen {
	s.City = cloneString(s.City)
	s.DeviceID = cloneString(s.DeviceID)
	return s
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
