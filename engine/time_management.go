package engine

import (
	"context"
	"time"
)

// TimeHandler decides when a search has to stop.
type TimeHandler struct {
	ctx        context.Context
	deadline   time.Time
	hasLimit   bool
	stopSearch bool
}

func (th *TimeHandler) start(ctx context.Context, moveTime time.Duration) {
	th.ctx = ctx
	th.stopSearch = false
	th.hasLimit = moveTime > 0
	if th.hasLimit {
		th.deadline = time.Now().Add(moveTime)
	}
}

// TimeStatus reports whether the search is out of time or cancelled.
func (th *TimeHandler) TimeStatus() bool {
	if th.stopSearch {
		return true
	}
	if th.ctx != nil && th.ctx.Err() != nil {
		th.stopSearch = true
	} else if th.hasLimit && time.Now().After(th.deadline) {
		th.stopSearch = true
	}
	return th.stopSearch
}
