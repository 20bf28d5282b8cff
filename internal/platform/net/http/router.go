package http

import "net/http"

// Handler is a plain handler func, every route registers one
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against, chi sits behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)
	// Any leaves method checks to h
	Any(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
