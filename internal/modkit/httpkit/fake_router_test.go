package httpkit

import (
	"net/http"

	phttp "codecheck/internal/platform/net/http"
)

type route struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records what gets mounted and passes itself as every subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	routes    []route
}

var _ Router = (*fakeRouter)(nil)

func (f *fakeRouter) add(verb, path string, h phttp.Handler) {
	f.routes = append(f.routes, route{verb: verb, path: path, ph: h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler)    { f.add("GET", path, h) }
func (f *fakeRouter) Post(path string, h phttp.Handler)   { f.add("POST", path, h) }
func (f *fakeRouter) Delete(path string, h phttp.Handler) { f.add("DELETE", path, h) }
func (f *fakeRouter) Any(path string, h phttp.Handler)    { f.add("ANY", path, h) }

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.routes = append(f.routes, route{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }
