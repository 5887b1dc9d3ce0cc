package player

import (
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/playersim/assert"
	"github.com/oomph-ac/playersim/oerror"
)

func (p *Player) recoverError() {
	v := recover()
	if v == nil {
		return
	}

	if recvFn := p.recoverFunc; recvFn != nil {
		recvFn(p, v)
	} else {
		p.log.Errorf("tick panic: %v", v)
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("player", p.name)
			scope.SetTag("side", p.side.String())
		})
		if err, ok := v.(error); ok {
			hub.Recover(err)
		} else {
			hub.Recover(oerror.New("%v", v))
		}
	}

	if assert.Strict() {
		panic(v)
	}
}
