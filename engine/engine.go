package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/model"
	"golang.org/x/exp/rand"
)

const HighScoreKey = "@snake_game_high_score"

var (
	ErrClosed  = errors.New("engine closed")
	ErrRunning = errors.New("engine loop already running")
)

// ScoreStore keeps integers by key.
type ScoreStore interface {
	Get(ctx context.Context, key string) (int, bool, error)
	Set(ctx context.Context, key string, value int) error
}

type eventKind int

const (
	evStart eventKind = iota + 1
	evSwipe
	evDirection
	evPause
	evReset
)

type event struct {
	kind      eventKind
	dx, dy    float64
	direction model.Direction
	done      chan bool
}

// Engine runs one Game on its own goroutine. All input goes through the
// loop; readers use Snapshot or Subscribe.
type Engine struct {
	store        ScoreStore
	clock        Clock
	log          *log.Entry
	storeTimeout time.Duration

	events    chan event
	loaded    chan int
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	started   atomic.Bool
	pending   sync.WaitGroup

	// owned by the loop
	game      *Game
	highScore int
	hsLoaded  bool
	unsaved   int
	newBest   bool
	seq       uint64
	tick      Timer
	countdown Timer

	writeMu sync.Mutex
	written int

	snap       atomic.Pointer[model.Snapshot]
	subsMu     sync.Mutex
	subs       map[int]chan model.Snapshot
	nextSub    int
	subsClosed bool
}

type Option func(*engineOptions)

type engineOptions struct {
	clock        Clock
	layout       Layout
	seed         uint64
	storeTimeout time.Duration
	logger       *log.Entry
}

func WithClock(c Clock) Option {
	return func(o *engineOptions) { o.clock = c }
}

func WithLayout(l Layout) Option {
	return func(o *engineOptions) { o.layout = l }
}

func WithSeed(seed uint64) Option {
	return func(o *engineOptions) { o.seed = seed }
}

// WithStoreTimeout bounds every store call.
func WithStoreTimeout(d time.Duration) Option {
	return func(o *engineOptions) { o.storeTimeout = d }
}

func WithLogger(l *log.Entry) Option {
	return func(o *engineOptions) { o.logger = l }
}

// New prepares an engine in IDLE. Loop has to run before any input is sent.
// A nil store disables persistence.
func New(store ScoreStore, opts ...Option) (*Engine, error) {
	o := engineOptions{
		clock:        SystemClock{},
		layout:       DefaultLayout(),
		seed:         uint64(time.Now().UnixNano()),
		storeTimeout: 5 * time.Second,
		logger:       log.WithField("component", "engine"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.layout.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		store:        store,
		clock:        o.clock,
		log:          o.logger,
		storeTimeout: o.storeTimeout,
		events:       make(chan event),
		loaded:       make(chan int, 1),
		quit:         make(chan struct{}),
		stopped:      make(chan struct{}),
		game:         NewGame(o.layout, rand.New(rand.NewSource(o.seed))),
		subs:         make(map[int]chan model.Snapshot),
	}
	e.publish()
	return e, nil
}

func (e *Engine) OnSwipeEnd(dx, dy float64) bool {
	return e.post(event{kind: evSwipe, dx: dx, dy: dy})
}

func (e *Engine) OnDirectionButton(d model.Direction) bool {
	return e.post(event{kind: evDirection, direction: d})
}

func (e *Engine) OnStart() bool {
	return e.post(event{kind: evStart})
}

func (e *Engine) OnPauseToggle() bool {
	return e.post(event{kind: evPause})
}

func (e *Engine) OnReset() bool {
	return e.post(event{kind: evReset})
}

// Apply routes a remote client message to the matching input.
func (e *Engine) Apply(cm model.ClientMessage) bool {
	switch cm.Kind {
	case model.IN_SWIPE:
		return e.OnSwipeEnd(cm.Dx, cm.Dy)
	case model.IN_DIRECTION:
		return e.OnDirectionButton(cm.Direction)
	case model.IN_START:
		return e.OnStart()
	case model.IN_PAUSE:
		return e.OnPauseToggle()
	case model.IN_RESET:
		return e.OnReset()
	default:
		e.log.Warnf("unknown input kind %d", cm.Kind)
		return false
	}
}

// post hands ev to the loop and waits until it is applied.
func (e *Engine) post(ev event) bool {
	ev.done = make(chan bool, 1)
	select {
	case e.events <- ev:
	case <-e.stopped:
		return false
	}
	select {
	case ok := <-ev.done:
		return ok
	case <-e.stopped:
		return false
	}
}

func (e *Engine) Snapshot() model.Snapshot {
	return *e.snap.Load()
}

// Subscribe returns a channel that always holds the newest snapshot not yet
// read. It is closed when the loop ends or cancel is called.
func (e *Engine) Subscribe() (<-chan model.Snapshot, func()) {
	ch := make(chan model.Snapshot, 1)
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if e.subsClosed {
		close(ch)
		return ch, func() {}
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- *e.snap.Load()
	return ch, func() {
		e.subsMu.Lock()
		defer e.subsMu.Unlock()
		if c, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(c)
		}
	}
}

// Loop owns the game until ctx ends or Close is called. Timers are released
// before it returns.
func (e *Engine) Loop(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		e.stopTick()
		e.stopCountdown()
		cancel()
		e.closeSubscribers()
		close(e.stopped)
		e.log.Debug("engine loop ended")
	}()

	select {
	case <-e.quit:
		return ErrClosed
	default:
	}
	if e.store != nil {
		e.pending.Add(1)
		go e.loadHighScore(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.quit:
			return nil
		case hs := <-e.loaded:
			e.onHighScoreLoaded(hs)
		case ev := <-e.events:
			ev.done <- e.handle(ev)
		case <-timerC(e.tick):
			e.tick = nil
			e.onTick()
		case <-timerC(e.countdown):
			e.countdown = nil
			e.game.CountDown()
			e.syncTimers()
			e.publish()
		}
	}
}

// Close stops the loop and waits for pending store calls.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() { close(e.quit) })
	if e.started.Load() {
		<-e.stopped
	}
	e.pending.Wait()
	return nil
}

// Done is closed once the loop has ended.
func (e *Engine) Done() <-chan struct{} {
	return e.stopped
}

func (e *Engine) handle(ev event) bool {
	var ok bool
	switch ev.kind {
	case evStart:
		ok = e.game.Start()
		if ok {
			e.newBest = false
		}
	case evSwipe:
		ok = e.game.Swipe(ev.dx, ev.dy)
	case evDirection:
		ok = e.game.Steer(ev.direction)
	case evPause:
		ok = e.game.TogglePause()
	case evReset:
		ok = e.game.Reset()
		if ok {
			e.newBest = false
		}
	}
	if !ok {
		e.log.Debugf("input %d ignored in %s", ev.kind, e.game.Phase.Name())
		return false
	}
	e.syncTimers()
	e.publish()
	return true
}

func (e *Engine) onTick() {
	out := e.game.Tick()
	if out.Collided() {
		e.gameOver(out)
	}
	e.syncTimers()
	e.publish()
}

func (e *Engine) gameOver(out model.Outcome) {
	score := e.game.Score
	best, write := settleHighScore(e.highScore, score)
	e.log.WithFields(log.Fields{
		"outcome": out.Name(),
		"score":   score,
		"best":    best,
		"length":  len(e.game.Snake),
	}).Info("game over")
	if !write {
		return
	}
	e.highScore = best
	e.newBest = true
	if e.store == nil {
		return
	}
	if !e.hsLoaded {
		// settled once the stored value is known
		e.unsaved = best
		return
	}
	e.save(best)
}

// syncTimers arms the timer the current phase needs and releases the other.
func (e *Engine) syncTimers() {
	switch e.game.Phase {
	case model.RUNNING:
		e.stopCountdown()
		if e.tick == nil {
			e.tick = e.clock.NewTimer(e.game.Speed)
		}
	case model.COUNTDOWN:
		e.stopTick()
		if e.countdown == nil {
			e.countdown = e.clock.NewTimer(CountdownStep)
		}
	default:
		e.stopTick()
		e.stopCountdown()
	}
}

func (e *Engine) stopTick() {
	if e.tick != nil {
		e.tick.Stop()
		e.tick = nil
	}
}

func (e *Engine) stopCountdown() {
	if e.countdown != nil {
		e.countdown.Stop()
		e.countdown = nil
	}
}

func timerC(t Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C()
}

func (e *Engine) publish() {
	g := e.game
	e.seq++
	s := &model.Snapshot{
		Seq:          e.seq,
		Grid:         g.Grid(),
		Snake:        g.Snake,
		Food:         g.Food,
		Direction:    g.Direction,
		Score:        g.Score,
		HighScore:    e.highScore,
		NewHighScore: e.newBest && g.Phase == model.GAME_OVER,
		Speed:        g.Speed,
		Phase:        g.Phase,
		Countdown:    g.Countdown,
		Outcome:      g.Outcome,
	}
	e.snap.Store(s)

	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- *s:
		default:
			// drop the unread one, the newest wins
			select {
			case <-ch:
			default:
			}
			ch <- *s
		}
	}
}

func (e *Engine) closeSubscribers() {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
	e.subsClosed = true
}
