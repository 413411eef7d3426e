// Package search drives a product search session: debounced input,
// incremental (infinite-scroll) pagination, curated-pill searches and the
// recent-query store. All session state lives on the Session value instead
// of package-level globals, so two sessions never interfere.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

type State int

const (
	// Idle: nothing searched yet, or the input was cleared below the
	// minimum query length.
	Idle State = iota
	Searching
	Results
	LoadingMore
	// Exhausted: the last page came back short; no further fetches for
	// this query.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Results:
		return "results"
	case LoadingMore:
		return "loading-more"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

const (
	DefaultPageSize = 20
	DefaultDebounce = 300 * time.Millisecond

	// Queries of a single character are not worth a round trip.
	minQueryLen = 2
)

// Fetcher is the read API the session paginates over.
type Fetcher interface {
	Search(ctx context.Context, q string, page, limit int) ([]catalog.ProductSummary, error)
	ByEntity(ctx context.Context, entityID int64, page, limit int) ([]catalog.ProductSummary, error)
}

// Snapshot is what a renderer needs to draw the session.
type Snapshot struct {
	State   State
	Query   string
	Message string
	Items   []catalog.ProductSummary
	HasMore bool
}

type Config struct {
	PageSize int
	Debounce time.Duration
	// Recents, when set, records every submitted query.
	Recents *Recent
}

type Session struct {
	ctx      context.Context
	fetcher  Fetcher
	cfg      Config
	onRender func(Snapshot)

	mu       sync.Mutex
	state    State
	query    string
	entityID int64
	page     int
	items    []catalog.ProductSummary
	message  string
	hasMore  bool
	loading  bool
	// seq orders issued fetches; a response is discarded when a newer
	// fetch was issued while it was in flight.
	seq   uint64
	timer *time.Timer
}

func NewSession(ctx context.Context, f Fetcher, cfg Config, onRender func(Snapshot)) *Session {
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Session{
		ctx:      ctx,
		fetcher:  f,
		cfg:      cfg,
		onRender: onRender,
		state:    Idle,
		page:     1,
	}
}

// Input registers a keystroke. The search fires only after the debounce
// window passes without another call; each call restarts the window.
func (s *Session) Input(q string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.cfg.Debounce, func() {
		s.Submit(q)
	})
	s.mu.Unlock()
}

// Submit runs a search immediately (Enter key, or a debounce firing). It
// blocks until the page is loaded and rendered.
func (s *Session) Submit(q string) {
	q = strings.TrimSpace(q)
	if q != "" && len([]rune(q)) < minQueryLen {
		s.mu.Lock()
		s.seq++ // invalidate anything in flight
		s.items = nil
		s.message = ""
		s.hasMore = false
		s.loading = false
		s.state = Idle
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.render(snap)
		return
	}
	s.load(q, 0, "", 1, false)
}

// SelectPill searches a curated list instead of free text. The pill label
// is what the shopper sees, so it is what gets remembered.
func (s *Session) SelectPill(entityID int64, label string) {
	s.load("", entityID, label, 1, false)
}

// Sentinel reports that the scroll sentinel intersected the viewport. The
// next page loads only when nothing is in flight and the previous page was
// full; a short page has already parked the session in Exhausted.
func (s *Session) Sentinel() {
	s.mu.Lock()
	if s.loading || !s.hasMore || s.state != Results {
		s.mu.Unlock()
		return
	}
	q, entityID, page := s.query, s.entityID, s.page+1
	s.mu.Unlock()

	s.load(q, entityID, "", page, true)
}

// Clear resets the session to the unfiltered catalog, as the clear button
// does.
func (s *Session) Clear() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.load("", 0, "", 1, false)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	items := make([]catalog.ProductSummary, len(s.items))
	copy(items, s.items)
	return Snapshot{
		State:   s.state,
		Query:   s.query,
		Message: s.message,
		Items:   items,
		HasMore: s.hasMore,
	}
}

func (s *Session) render(snap Snapshot) {
	if s.onRender != nil {
		s.onRender(snap)
	}
}

func (s *Session) fetch(q string, entityID int64, page, limit int) ([]catalog.ProductSummary, error) {
	if entityID != 0 {
		return s.fetcher.ByEntity(s.ctx, entityID, page, limit)
	}
	return s.fetcher.Search(s.ctx, q, page, limit)
}

func (s *Session) load(q string, entityID int64, label string, page int, appendPage bool) {
	s.mu.Lock()
	s.seq++
	mine := s.seq
	s.loading = true
	if appendPage {
		s.state = LoadingMore
	} else {
		s.state = Searching
		s.query = q
		s.entityID = entityID
	}
	pageSize := s.cfg.PageSize
	s.mu.Unlock()

	items, err := s.fetch(q, entityID, page, pageSize)

	s.mu.Lock()
	if mine != s.seq {
		// A newer search was issued while this one was in flight.
		s.mu.Unlock()
		return
	}
	s.loading = false

	if err != nil {
		s.message = "Failed to load search results. Please try again."
		if !appendPage {
			s.items = nil
		}
		s.hasMore = false
		s.state = Results
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.render(snap)
		return
	}

	s.hasMore = len(items) == pageSize

	if appendPage {
		// No de-duplication: id-descending ordering keeps a stable
		// offset sequence from overlapping.
		s.items = append(s.items, items...)
		s.page = page
		s.state = Results
		if !s.hasMore {
			s.state = Exhausted
		}
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.render(snap)
		return
	}

	if len(items) == 0 && q != "" && entityID == 0 {
		// Dead-end search: keep the "no results" message but repopulate
		// the grid with the unfiltered catalog so the shopper is not
		// left staring at nothing. Pagination continues over the
		// catalog from here.
		s.message = fmt.Sprintf("No results for %q", q)
		s.query = ""
		s.mu.Unlock()

		fallback, ferr := s.fetcher.Search(s.ctx, "", 1, pageSize)

		s.mu.Lock()
		if mine != s.seq {
			s.mu.Unlock()
			return
		}
		if ferr != nil {
			s.items = nil
			s.hasMore = false
		} else {
			s.items = fallback
			s.hasMore = len(fallback) == pageSize
		}
	} else {
		s.items = items
		switch {
		case entityID != 0:
			s.message = fmt.Sprintf("Showing results for %q", label)
		case q != "":
			s.message = fmt.Sprintf("Showing results for %q", q)
		default:
			s.message = ""
		}
	}

	s.page = 1
	s.state = Results
	if !s.hasMore {
		s.state = Exhausted
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.render(snap)

	if s.cfg.Recents != nil {
		switch {
		case q != "":
			s.cfg.Recents.Save(q)
		case label != "":
			s.cfg.Recents.Save(label)
		}
	}
}
