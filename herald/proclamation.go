package herald

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Proclamation is an announcement delivered to every Listener registered for the type of its body.
type Proclamation struct {
	id   string
	when time.Time
	body any
	ctx  context.Context
}

// NewProclamation wraps body in a Proclamation stamped with a fresh id and the current time.
func NewProclamation(ctx context.Context, body any) *Proclamation {
	return &Proclamation{id: uuid.NewString(), when: time.Now(), body: body, ctx: ctx}
}

// ID return the id of the proclamation.
func (p *Proclamation) ID() string {
	return p.id
}

// When return the time the proclamation was made.
func (p *Proclamation) When() time.Time {
	return p.when
}

// Body return the body of the proclamation.
func (p *Proclamation) Body() any {
	return p.body
}

// Type return the body's reflect.Type.
func (p *Proclamation) Type() reflect.Type {
	return reflect.TypeOf(p.body)
}

// Context returns the context the proclamation was made with.
func (p *Proclamation) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}
