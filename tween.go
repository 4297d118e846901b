package main

import "github.com/tanema/gween"

// Action hooks a running tween: onChange gets every value, onFinish and
// nexts run once it completes.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t to start when a's tween finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts, func(g *Game) {
		g.Tweens[t] = action
	})
	return action
}

func (g *Game) animate(t *gween.Tween, onChange func(float32)) *Action {
	a := &Action{onChange: onChange}
	g.Tweens[t] = a
	return a
}

// stepTweens advances every tween by dt seconds.
func (g *Game) stepTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if !finished {
			continue
		}
		for _, onFinish := range a.onFinish {
			onFinish()
		}
		for _, next := range a.nexts {
			next(g)
		}
		delete(g.Tweens, t)
	}
}
