package swaggerkit

import (
	"net/http"

	phttp "codecheck/internal/platform/net/http"
)

type recRouter struct{ paths []string }

func (r *recRouter) Get(p string, _ phttp.Handler) { r.paths = append(r.paths, p) }
func (r *recRouter) Post(p string, _ phttp.Handler) { r.paths = append(r.paths, p) }
func (r *recRouter) Delete(p string, _ phttp.Handler) { r.paths = append(r.paths, p) }
func (r *recRouter) Any(p string, _ phttp.Handler) { r.paths = append(r.paths, p) }
func (r *recRouter) Handle(p string, _ http.Handler) { r.paths = append(r.paths, p) }
func (r *recRouter) Use(...func(http.Handler) http.Handler) {}
func (r *recRouter) Group(fn func(phttp.Router)) { fn(r) }
func (r *recRouter) Route(_ string, fn func(phttp.Router)) { fn(r) }
func (r *recRouter) Mux() http.Handler { return http.NewServeMux() }
