package player

import (
	"github.com/oomph-ac/playersim/message"
)

// Deliver queues a message from the other side. It is handled at the start of the next tick. Deliver may be
// called from any goroutine.
func (p *Player) Deliver(m message.Message) {
	p.inboxMu.Lock()
	defer p.inboxMu.Unlock()

	if p.inboxClosed {
		return
	}
	p.inbox = append(p.inbox, m)
}

// Send sends a message about the player to the other side. Failing to send is logged and otherwise ignored:
// the next state change sends a fresh message.
func (p *Player) Send(m message.Message) {
	if p.sender == nil {
		return
	}
	if err := p.sender.WriteMessage(p.runtimeID, m); err != nil {
		p.log.Warnf("failed to send %s: %v", message.Name(m), err)
	}
}

func (p *Player) handleInbox() {
	p.inboxMu.Lock()
	inbox := p.inbox
	p.inbox = nil
	p.inboxMu.Unlock()

	for _, m := range inbox {
		if !p.handleMessage(m) {
			p.log.Warnf("dropped unhandled message %s", message.Name(m))
		}
	}
}

func (p *Player) handleMessage(m message.Message) bool {
	for _, c := range p.components {
		if h, ok := c.(MessageHandler); ok && h.HandleMessage(m) {
			return true
		}
	}
	return false
}
