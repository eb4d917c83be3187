// Package confirm gates destructive actions behind an explicit second step: Request
// returns a token, and only Confirm with that token runs the action.
package confirm

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownToken is returned by Confirm for tokens that were never issued or were
// already confirmed or declined.
var ErrUnknownToken = errors.New("unknown or expired confirmation token")

// Prompt is what the UI shows while the request is pending, plus the notice to show once
// the action has run.
type Prompt struct {
	Title        string
	Text         string
	ConfirmLabel string
	CancelLabel  string

	DoneTitle string
	DoneText  string

	// Shown when the request is declined.
	DeclinedTitle string
	DeclinedText  string
}

type Request struct {
	Token string
	Prompt
}

type pending struct {
	req    Request
	action func() error
}

// Gate holds outstanding requests. The zero value is ready to use.
type Gate struct {
	pending map[string]pending
	order   []string
}

// Request registers action and returns the request that must be confirmed to run it.
func (g *Gate) Request(p Prompt, action func() error) Request {
	if g.pending == nil {
		g.pending = map[string]pending{}
	}
	if p.CancelLabel == "" {
		p.CancelLabel = "Cancel"
	}
	if p.DeclinedTitle == "" {
		p.DeclinedTitle = "Cancelled"
	}
	req := Request{Token: uuid.NewString(), Prompt: p}
	g.pending[req.Token] = pending{req: req, action: action}
	g.order = append(g.order, req.Token)
	return req
}

// Confirm runs and forgets the action for token. The token is consumed even when the
// action fails.
func (g *Gate) Confirm(token string) (Request, error) {
	p, ok := g.pending[token]
	if !ok {
		return Request{}, ErrUnknownToken
	}
	g.forget(token)
	return p.req, p.action()
}

// Decline forgets token without running its action. It reports whether token was pending.
func (g *Gate) Decline(token string) bool {
	if _, ok := g.pending[token]; !ok {
		return false
	}
	g.forget(token)
	return true
}

// Pending returns the most recent outstanding request.
func (g *Gate) Pending() (Request, bool) {
	if len(g.order) == 0 {
		return Request{}, false
	}
	return g.pending[g.order[len(g.order)-1]].req, true
}

func (g *Gate) forget(token string) {
	delete(g.pending, token)
	for i, t := range g.order {
		if t == token {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}
