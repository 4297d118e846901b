package engine

import (
	"context"
)

// loadHighScore reads the stored best once. Failures count as zero.
func (e *Engine) loadHighScore(ctx context.Context) {
	defer e.pending.Done()
	ctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()
	value, ok, err := e.store.Get(ctx, HighScoreKey)
	if err != nil {
		e.log.WithError(err).Warn("high score not loaded")
		value = 0
	} else if !ok {
		e.log.Debug("no high score stored yet")
	}
	if value < 0 {
		value = 0
	}
	e.loaded <- value
}

func (e *Engine) onHighScoreLoaded(stored int) {
	e.hsLoaded = true
	unsaved := e.unsaved
	e.unsaved = 0
	if stored >= e.highScore {
		changed := stored > e.highScore || e.newBest
		e.highScore = stored
		e.newBest = false
		if changed {
			e.publish()
		}
		return
	}
	if unsaved > stored {
		e.save(unsaved)
	}
}

func (e *Engine) save(score int) {
	e.pending.Add(1)
	go e.saveHighScore(score)
}

// saveHighScore writes score unless a higher one was already written.
func (e *Engine) saveHighScore(score int) {
	defer e.pending.Done()
	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	if score <= e.written {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.storeTimeout)
	defer cancel()
	if err := e.store.Set(ctx, HighScoreKey, score); err != nil {
		e.log.WithError(err).Warnf("high score %d not saved", score)
		return
	}
	e.written = score
	e.log.Infof("high score %d saved", score)
}
