package library

import (
	"context"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/txn"
)

// Method is one of the four HTTP-like verbs a handler may support.
type Method int

const (
	Get Method = iota
	Put
	Post
	Delete
)

func (m Method) String() string {
	switch m {
	case Get:
		return "GET"
	case Put:
		return "PUT"
	case Post:
		return "POST"
	case Delete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Route resolves a path to a Handler. Dir[Handler] satisfies this.
type Route interface {
	Route(path id.Path) (Handler, bool)
}

// Handler is implemented by every mounted endpoint. A handler exposes zero
// or more of Getter, Putter, Poster, Deleter; Dispatch reports
// MethodNotAllowed for any verb it doesn't implement.
type Handler interface {
	// TypeName identifies the handler in MethodNotAllowed errors.
	TypeName() string
}

// Getter is implemented by handlers that support GET.
type Getter interface {
	Handler
	Get(ctx context.Context, t txn.Transaction, key any) (any, error)
}

// Putter is implemented by handlers that support PUT.
type Putter interface {
	Handler
	Put(ctx context.Context, t txn.Transaction, key, value any) error
}

// Poster is implemented by handlers that support POST.
type Poster interface {
	Handler
	Post(ctx context.Context, t txn.Transaction, params any) (any, error)
}

// Deleter is implemented by handlers that support DELETE.
type Deleter interface {
	Handler
	Delete(ctx context.Context, t txn.Transaction, key any) error
}

// methodNotAllowed builds the MethodNotAllowed error Dispatch returns when a
// handler doesn't implement the requested verb.
func methodNotAllowed(method Method, h Handler) error {
	return id.MethodNotAllowed.Err("method %s not allowed on handler %s", method, h.TypeName())
}

// Dispatch invokes the verb named by method against h, type-asserting it to
// the matching verb interface. It returns MethodNotAllowed if h does not
// implement that verb.
func Dispatch(ctx context.Context, h Handler, method Method, t txn.Transaction, key, value any) (any, error) {
	switch method {
	case Get:
		g, ok := h.(Getter)
		if !ok {
			return nil, methodNotAllowed(method, h)
		}
		return g.Get(ctx, t, key)
	case Put:
		p, ok := h.(Putter)
		if !ok {
			return nil, methodNotAllowed(method, h)
		}
		return nil, p.Put(ctx, t, key, value)
	case Post:
		p, ok := h.(Poster)
		if !ok {
			return nil, methodNotAllowed(method, h)
		}
		return p.Post(ctx, t, value)
	case Delete:
		d, ok := h.(Deleter)
		if !ok {
			return nil, methodNotAllowed(method, h)
		}
		return nil, d.Delete(ctx, t, key)
	default:
		return nil, id.Errorf("unknown method %v", method)
	}
}
