package simulation

import (
	"context"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/playersim/player"
	"github.com/oomph-ac/playersim/worker"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Loop ticks a set of players at a fixed rate. Players are ticked concurrently, each one by a single
// worker, and a panic in one player never affects the others. Players only see each other through the
// snapshots taken at the start of every tick.
type Loop struct {
	log      *logrus.Logger
	tickRate int

	// tickMu is held for the duration of a tick. Players are only closed while holding it.
	tickMu deadlock.Mutex

	mu      deadlock.RWMutex
	players *orderedmap.OrderedMap[uint64, *player.Player]
}

// NewLoop creates a loop ticking tickRate times per second. A non-positive tick rate is replaced by 20.
func NewLoop(log *logrus.Logger, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &Loop{
		log:      log,
		tickRate: tickRate,
		players:  orderedmap.NewOrderedMap[uint64, *player.Player](),
	}
}

// TickRate ...
func (l *Loop) TickRate() int {
	return l.tickRate
}

// Add adds a player to the loop. A player already added with the same runtime ID is closed and replaced,
// after the tick in progress, if any, finished.
func (l *Loop) Add(p *player.Player) {
	l.mu.Lock()
	old, ok := l.players.Get(p.RuntimeID())
	l.players.Set(p.RuntimeID(), p)
	l.mu.Unlock()

	if ok && old != p {
		l.log.Warnf("replaced player with runtime ID %d", p.RuntimeID())
		l.close(old)
	}
}

// Remove removes and closes the player with the runtime ID passed. It waits for the tick in progress, if
// any, to finish, so it must not be called from a component of a player in the loop.
func (l *Loop) Remove(id uint64) {
	l.mu.Lock()
	p, ok := l.players.Get(id)
	l.players.Delete(id)
	l.mu.Unlock()

	if ok {
		l.close(p)
	}
}

func (l *Loop) close(p *player.Player) {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()
	p.Close()
}

// Player returns the player with the runtime ID passed, or nil if it is not part of the loop.
func (l *Loop) Player(id uint64) *player.Player {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, _ := l.players.Get(id)
	return p
}

// Players returns the players of the loop in the order they were added.
func (l *Loop) Players() []*player.Player {
	l.mu.RLock()
	defer l.mu.RUnlock()

	players := make([]*player.Player, 0, l.players.Len())
	for el := l.players.Front(); el != nil; el = el.Next() {
		players = append(players, el.Value)
	}
	return players
}

// Tick runs a single tick of every player and waits for all of them to finish. Before any player runs, the
// selections of every player are resolved against snapshots of the others.
func (l *Loop) Tick(dt float32) {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	players := l.Players()
	snapshots := make(map[uint64]player.Snapshot, len(players))
	for _, p := range players {
		snapshots[p.RuntimeID()] = p.Snapshot()
	}
	lookup := func(id uint64) (player.Snapshot, bool) {
		s, ok := snapshots[id]
		return s, ok
	}

	for _, p := range players {
		p.ResolveSelection(lookup)
	}

	var g worker.Group
	for _, p := range players {
		g.Go(func() {
			p.Tick(dt)
		})
	}
	g.Wait()
}

// Run ticks the loop until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	interval := time.Second / time.Duration(l.tickRate)
	dt := float32(interval.Seconds())

	t := time.NewTicker(interval)
	defer t.Stop()

	l.log.Infof("simulation running at %d ticks per second", l.tickRate)
	for {
		select {
		case <-ctx.Done():
			l.log.Info("simulation stopped")
			return
		case <-t.C:
			start := time.Now()
			l.Tick(dt)
			if took := time.Since(start); took > interval {
				l.log.Warnf("tick took %v, longer than the tick interval of %v", took, interval)
			}
		}
	}
}
