package httpkit

import (
	"net/http"
	"strings"
)

// Middlewares is a per-scope middleware chain
type Middlewares = []func(http.Handler) http.Handler

// MountUnder scopes mount to prefix with mw applied, an empty prefix mounts a group on r itself
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(prefix, scoped)
}

// MountAPI mounts under /api/{version}
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(o), func(api httpkit.Router) {
//	  webhook.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw Middlewares, mount func(Router)) {
	MountUnder(r, "/api/"+strings.TrimPrefix(version, "/"), mw, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw Middlewares, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}

// Get registers a GET route answered through the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
