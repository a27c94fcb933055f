package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/meal-finder/internal/logger"
	"github.com/ytget/meal-finder/internal/mealdb"
	"github.com/ytget/meal-finder/internal/model"
	"github.com/ytget/meal-finder/internal/platform"
)

// MessageEmptyQuery is shown when a blank query is submitted
const MessageEmptyQuery = "Please enter a search term"

// ErrEmptyQuery is returned by Submit for blank input; no lookup is made.
var ErrEmptyQuery = errors.New("empty search term")

// userFacing is implemented by lookup errors that carry display text
type userFacing interface {
	UserMessage() string
}

// Controller owns the search screen state
type Controller struct {
	fetcher mealdb.Fetcher
	opener  platform.LinkOpener
	log     *zap.Logger

	mu       sync.Mutex
	state    model.ViewState
	seq      uint64 // bumped on every submission; only the newest applies its outcome
	onChange func(model.ViewState)
}

// NewController creates a controller. A nil log falls back to the global logger.
func NewController(fetcher mealdb.Fetcher, opener platform.LinkOpener, log *zap.Logger) *Controller {
	if log == nil {
		log = logger.Get()
	}
	return &Controller{
		fetcher: fetcher,
		opener:  opener,
		log:     log,
	}
}

// OnChange sets the callback invoked with a snapshot after every state change
func (c *Controller) OnChange(callback func(model.ViewState)) {
	c.mu.Lock()
	c.onChange = callback
	c.mu.Unlock()
}

// SetFetcher replaces the lookup backend used by later submissions
func (c *Controller) SetFetcher(fetcher mealdb.Fetcher) {
	c.mu.Lock()
	c.fetcher = fetcher
	c.mu.Unlock()
}

// State returns a snapshot of the current state
func (c *Controller) State() model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SetQuery records the text currently typed in the search field
func (c *Controller) SetQuery(query string) {
	c.update(func(s *model.ViewState) {
		s.Query = query
	})
}

// Submit trims raw and looks it up as a meal id. It blocks until the lookup
// settles and returns its error, if any. Loading is released on every path,
// including a panicking fetcher.
func (c *Controller) Submit(ctx context.Context, raw string) (err error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		c.update(func(s *model.ViewState) {
			c.seq++
			s.Query = raw
			s.Loading = false
			s.Error = MessageEmptyQuery
		})
		return ErrEmptyQuery
	}

	var (
		seq     uint64
		fetcher mealdb.Fetcher
	)
	c.update(func(s *model.ViewState) {
		c.seq++
		seq = c.seq
		fetcher = c.fetcher
		s.Query = raw
		s.Error = ""
		s.Loading = true
	})

	lookupID := uuid.NewString()
	log := logger.WithLookupID(c.log, lookupID).With(zap.String("meal_id", id))
	started := time.Now()
	log.Debug("Lookup started")

	var records []model.MealRecord
	defer func() {
		if r := recover(); r != nil {
			log.Error("Lookup panicked", zap.Any("panic", r))
			records = nil
			err = &mealdb.NetworkError{Op: "lookup " + id, Err: fmt.Errorf("panic: %v", r)}
		}

		if err != nil {
			log.Info("Lookup failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		} else {
			log.Info("Lookup succeeded", zap.Duration("duration", time.Since(started)), zap.Int("meals", len(records)))
		}

		c.settle(seq, records, err, log)
	}()

	records, err = fetcher.Lookup(ctx, id)
	if err == nil && len(records) == 0 {
		err = &mealdb.NotFoundError{ID: id}
	}
	return err
}

// settle applies a lookup outcome if it belongs to the newest submission
func (c *Controller) settle(seq uint64, records []model.MealRecord, err error, log *zap.Logger) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		log.Debug("Dropping outcome of superseded lookup")
		return
	}

	c.state.Loading = false
	if err != nil {
		// Previous results stay in place; the error takes display priority.
		c.state.Error = messageFor(err)
	} else {
		c.state.Results = records
	}

	snapshot := c.state.Clone()
	callback := c.onChange
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// OpenExternalLink hands raw to the link opener. Failures are logged and
// never reach the view state.
func (c *Controller) OpenExternalLink(raw string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Couldn't load page", zap.String("url", raw), zap.Any("panic", r))
		}
	}()

	u, err := platform.ParseLink(raw)
	if err != nil {
		c.log.Warn("Couldn't load page", zap.String("url", raw), zap.Error(err))
		return
	}

	if c.opener == nil {
		c.log.Warn("Couldn't load page: no link opener configured", zap.String("url", u.String()))
		return
	}

	if err := c.opener.OpenURL(u); err != nil {
		c.log.Warn("Couldn't load page", zap.String("url", u.String()), zap.Error(err))
		return
	}

	c.log.Debug("Opened external link", zap.String("url", u.String()))
}

// update mutates the state under the lock and notifies the listener
func (c *Controller) update(mutate func(*model.ViewState)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state.Clone()
	callback := c.onChange
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// messageFor maps a lookup error to its display text
func messageFor(err error) string {
	var uf userFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	return mealdb.MessageNetwork
}
