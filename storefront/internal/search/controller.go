package search

import (
	"context"
	"sync"

	"eatsfront/storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// ErrorMessage is what callers see for any failed fetch.
const ErrorMessage = "failed to retrieve restaurants"

type Status string

const (
	StatusNotReady Status = "not_ready"
	StatusLoading  Status = "loading"
	StatusSuccess  Status = "success"
	StatusError    Status = "error"
)

// State is a snapshot of the controller. Results is only set on success.
type State struct {
	Descriptor Descriptor                       `json:"descriptor"`
	Location   string                           `json:"location"`
	Status     Status                           `json:"status"`
	Results    *domain.RestaurantSearchResponse `json:"results,omitempty"`
	Error      string                           `json:"error,omitempty"`
	Generation uint64                           `json:"generation"`
}

type Searcher interface {
	SearchRestaurants(ctx context.Context, city string, descriptor Descriptor) (*domain.RestaurantSearchResponse, error)
}

// Controller owns one Descriptor and the result fetched for it. Every change
// of descriptor or location starts a new generation; results that come back
// for an older generation are dropped.
type Controller struct {
	searcher Searcher
	log      logrus.FieldLogger

	mu         sync.Mutex
	descriptor Descriptor
	location   string
	generation uint64
	state      State

	nextListener int
	listeners    map[int]func(State)
}

func NewController(searcher Searcher, log logrus.FieldLogger) *Controller {
	d := NewDescriptor()
	return &Controller{
		searcher:   searcher,
		log:        log,
		descriptor: d,
		state:      State{Descriptor: d, Status: StatusNotReady},
		listeners:  map[int]func(State){},
	}
}

// Subscribe registers fn to run after every applied state change. The returned
// func removes it.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Descriptor() Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.descriptor
}

func (c *Controller) SetSortOption(ctx context.Context, option string) State {
	return c.update(ctx, func(d Descriptor, loc string) (Descriptor, string) { return d.WithSortOption(option), loc })
}

func (c *Controller) SetSelectedCuisines(ctx context.Context, cuisines []string) State {
	return c.update(ctx, func(d Descriptor, loc string) (Descriptor, string) { return d.WithSelectedCuisines(cuisines), loc })
}

func (c *Controller) SetSearchQuery(ctx context.Context, query string) State {
	return c.update(ctx, func(d Descriptor, loc string) (Descriptor, string) { return d.WithSearchQuery(query), loc })
}

func (c *Controller) ResetSearch(ctx context.Context) State {
	return c.update(ctx, func(d Descriptor, loc string) (Descriptor, string) { return d.Reset(), loc })
}

func (c *Controller) SetPage(ctx context.Context, page int) State {
	return c.update(ctx, func(d Descriptor, loc string) (Descriptor, string) { return d.WithPage(page), loc })
}

// SetLocation changes the location key (city). An empty key puts the
// controller in the not-ready state without issuing a request.
func (c *Controller) SetLocation(ctx context.Context, location string) State {
	return c.update(ctx, func(d Descriptor, _ string) (Descriptor, string) { return d, location })
}

// Apply replaces descriptor and location in one step.
func (c *Controller) Apply(ctx context.Context, descriptor Descriptor, location string) State {
	return c.update(ctx, func(Descriptor, string) (Descriptor, string) { return descriptor, location })
}

// Refresh refetches the current inputs even if nothing changed.
func (c *Controller) Refresh(ctx context.Context) State {
	c.mu.Lock()
	gen, d, loc := c.invalidateLocked()
	c.mu.Unlock()
	c.notify()
	return c.fetch(ctx, gen, d, loc)
}

func (c *Controller) update(ctx context.Context, transition func(Descriptor, string) (Descriptor, string)) State {
	c.mu.Lock()
	d, loc := transition(c.descriptor, c.location)
	if d.Equal(c.descriptor) && loc == c.location && c.state.Status != StatusNotReady {
		// same inputs: the current result (or the in-flight fetch) still stands
		state := c.state
		c.mu.Unlock()
		return state
	}
	c.descriptor, c.location = d, loc
	gen, d, loc := c.invalidateLocked()
	c.mu.Unlock()

	c.notify()
	return c.fetch(ctx, gen, d, loc)
}

func (c *Controller) invalidateLocked() (uint64, Descriptor, string) {
	c.generation++
	status := StatusLoading
	if c.location == "" {
		status = StatusNotReady
	}
	c.state = State{
		Descriptor: c.descriptor,
		Location:   c.location,
		Status:     status,
		Generation: c.generation,
	}
	return c.generation, c.descriptor, c.location
}

func (c *Controller) fetch(ctx context.Context, gen uint64, d Descriptor, location string) State {
	if location == "" {
		return c.State()
	}

	results, err := c.searcher.SearchRestaurants(ctx, location, d)

	c.mu.Lock()
	if gen != c.generation {
		state := c.state
		c.mu.Unlock()
		c.log.WithField("generation", gen).WithField("current", state.Generation).
			Debug("discarding stale search result")
		return state
	}
	if err != nil {
		c.log.WithError(err).WithField("city", location).Warn("restaurant search failed")
		c.state.Status = StatusError
		c.state.Error = ErrorMessage
	} else {
		if results == nil {
			results = &domain.RestaurantSearchResponse{}
		}
		if results.Data == nil {
			results.Data = []domain.Restaurant{}
		}
		c.state.Status = StatusSuccess
		c.state.Results = results
	}
	state := c.state
	c.mu.Unlock()

	c.notify()
	return state
}

func (c *Controller) notify() {
	c.mu.Lock()
	state := c.state
	listeners := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
