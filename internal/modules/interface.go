package modules

import "github.com/go-chi/chi/v5"

// Module is a bounded context that exposes HTTP routes.
type Module interface {
	Name() string
	Routes(r chi.Router)
}
