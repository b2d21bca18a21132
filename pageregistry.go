package learningassistant

import (
	"sync"
	"time"
)

// PageRegistry holds the live page of every browser session
type PageRegistry struct {
	mu    sync.RWMutex
	pages map[string]*registeredPage
	now   func() time.Time
}

type registeredPage struct {
	page     *Page
	lastSeen time.Time
}

// NewPageRegistry creates an empty registry
func NewPageRegistry() *PageRegistry {
	return &PageRegistry{
		pages: make(map[string]*registeredPage),
		now:   time.Now,
	}
}

// Update runs fn on the page for id under the registry lock, creating the
// page if it does not exist. fn must not block.
func (pr *PageRegistry) Update(id string, fn func(p *Page)) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	rp, ok := pr.pages[id]
	if !ok {
		rp = &registeredPage{page: NewPage()}
		pr.pages[id] = rp
	}
	rp.lastSeen = pr.now()
	fn(rp.page)
}

// Snapshot returns a copy of the page for id that is safe to read without
// the lock. Unknown ids yield a fresh page.
func (pr *PageRegistry) Snapshot(id string) Page {
	var out Page
	pr.Update(id, func(p *Page) {
		out = *p
		out.Quiz = QuizState{
			Revealed: make(map[int]bool, len(p.Quiz.Revealed)),
			Selected: make(map[int]string, len(p.Quiz.Selected)),
		}
		for k, v := range p.Quiz.Revealed {
			out.Quiz.Revealed[k] = v
		}
		for k, v := range p.Quiz.Selected {
			out.Quiz.Selected[k] = v
		}
	})
	return out
}

// Remove drops the page for id
func (pr *PageRegistry) Remove(id string) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	delete(pr.pages, id)
}

// Size returns the number of live pages
func (pr *PageRegistry) Size() int {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return len(pr.pages)
}

// Sweep removes pages idle for longer than maxIdle. Pages with a request in
// flight are kept. It returns the number removed.
func (pr *PageRegistry) Sweep(maxIdle time.Duration) int {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	cutoff := pr.now().Add(-maxIdle)
	removed := 0
	for id, rp := range pr.pages {
		if rp.page.Loading {
			continue
		}
		if rp.lastSeen.Before(cutoff) {
			delete(pr.pages, id)
			removed++
		}
	}
	return removed
}
