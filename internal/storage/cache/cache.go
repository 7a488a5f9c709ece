package cache

import (
	"sync"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/LaryssaGabi/StudyFlow/internal/service"
)

// Cache keeps the dashboard sessions of every user along with their navigation state.
type Cache struct {
	mu       sync.Mutex
	sessions map[string]*service.Session
	views    map[string]models.ViewState
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]*service.Session),
		views:    make(map[string]models.ViewState),
	}
}

// Session returns the session stored under key, creating it with newSession on first use.
// The second result reports whether the session was created by this call.
func (c *Cache) Session(key string, newSession func() *service.Session) (*service.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[key]; ok {
		return s, false
	}
	s := newSession()
	c.sessions[key] = s
	return s, true
}

func (c *Cache) DeleteSession(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, key)
	delete(c.views, key)
}

func (c *Cache) SetView(key string, view models.ViewState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[key] = view
}

// View returns the navigation state of key, or the default state when none was set.
func (c *Cache) View(key string) models.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if view, ok := c.views[key]; ok {
		return view
	}
	return models.DefaultViewState()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}
