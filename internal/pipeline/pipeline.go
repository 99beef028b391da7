// Package pipeline runs an explicit, ordered list of gates in front of each
// handler. A gate either lets the request through or fails it with an error,
// which is written as the response and stops the chain.
package pipeline

import (
	"net/http"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/pkg/response"
)

// Request is what a gated handler receives: the HTTP request plus whatever the
// gates established about it.
type Request struct {
	*http.Request

	// Identity is set by Authenticate. It is nil on routes without it.
	Identity *model.Identity

	// Body is set by Validate to a pointer to the decoded body.
	Body any
}

// Gate inspects a request and returns nil to proceed.
type Gate func(req *Request) error

// HandlerFunc handles a request that has passed every gate.
type HandlerFunc func(w http.ResponseWriter, req *Request)

// Pipeline is an immutable, ordered gate list.
type Pipeline struct {
	gates []Gate
}

// New builds a pipeline from gates, run in the order given.
func New(gates ...Gate) Pipeline {
	return Pipeline{}.With(gates...)
}

// With returns a new pipeline with gates appended. The receiver is unchanged.
func (p Pipeline) With(gates ...Gate) Pipeline {
	combined := make([]Gate, 0, len(p.gates)+len(gates))
	combined = append(combined, p.gates...)
	combined = append(combined, gates...)
	return Pipeline{gates: combined}
}

// Len returns the number of gates.
func (p Pipeline) Len() int {
	return len(p.gates)
}

// Handle wraps h so that it only runs once every gate has passed.
func (p Pipeline) Handle(h HandlerFunc) http.HandlerFunc {
	gates := p.gates
	return func(w http.ResponseWriter, r *http.Request) {
		req := &Request{Request: r}
		for _, gate := range gates {
			if err := gate(req); err != nil {
				response.Error(w, err)
				return
			}
		}
		h(w, req)
	}
}

// Body returns the decoded body set by Validate[T]. It returns nil when the
// pipeline has no Validate gate for T.
func Body[T any](req *Request) *T {
	body, _ := req.Body.(*T)
	return body
}
