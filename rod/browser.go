package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/docscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultRecycleAfter is the number of pages a browser renders before it
// is replaced by a fresh one.
const DefaultRecycleAfter = 75

// RecycleFunc is called after the pool tried to replace its browser.
// rendered is the number of pages the old browser served; err is non-nil
// when the new browser failed to start and the old one stays in service.
type RecycleFunc func(rendered int64, err error)

// session is one running Chrome process.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher

	// open counts pages handed out and not yet released.
	open    int
	retired bool
}

func launchSession() (*session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &session{browser: b, launcher: l}, nil
}

func (s *session) close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	return err
}

// pool hands out pages from one browser session and swaps the session for
// a fresh one after budget pages, since Chrome's memory only grows over a
// long crawl. A retired session stays alive until its last page is released.
type pool struct {
	budget    int64
	onRecycle RecycleFunc

	mu       sync.Mutex
	current  *session
	rendered int64
	closed   bool
}

func newPool(budget int64, onRecycle RecycleFunc) (*pool, error) {
	s, err := launchSession()
	if err != nil {
		return nil, err
	}
	return &pool{budget: budget, onRecycle: onRecycle, current: s}, nil
}

// page opens a blank page. The returned release func closes the page and
// must be called exactly once.
func (p *pool) page() (*rod.Page, func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, nil, docscrape.Errorf(docscrape.EINVALID, "fetcher is closed")
	}
	if p.budget > 0 && p.rendered >= p.budget {
		p.recycle()
	}

	s := p.current
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, err
	}
	s.open++
	p.rendered++

	release := func() {
		_ = page.Close()
		p.mu.Lock()
		defer p.mu.Unlock()
		s.open--
		if s.retired && s.open == 0 {
			_ = s.close()
		}
	}
	return page, release, nil
}

// recycle replaces the current session. Must be called with mu held.
func (p *pool) recycle() {
	rendered := p.rendered
	next, err := launchSession()
	if err != nil {
		p.notify(rendered, err)
		return
	}

	old := p.current
	p.current = next
	p.rendered = 0
	old.retired = true
	if old.open == 0 {
		_ = old.close()
	}
	p.notify(rendered, nil)
}

func (p *pool) notify(rendered int64, err error) {
	if p.onRecycle != nil {
		p.onRecycle(rendered, err)
	}
}

// close shuts down the current session. Safe to call more than once.
func (p *pool) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.current.close()
}

// pid returns the launcher process ID of the current session, or 0 once closed.
func (p *pool) pid() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0
	}
	return p.current.launcher.PID()
}
