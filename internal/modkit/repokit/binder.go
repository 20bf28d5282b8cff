package repokit

// Binder binds a domain repo to a backend handle such as a Queryer or a KV
type Binder[H comparable, T any] interface {
	Bind(H) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[H comparable, T any] func(H) T

// Bind calls the underlying function
func (f BindFunc[H, T]) Bind(h H) T { return f(h) }

// Require panics early on programmer error (zero handle)
func Require[H comparable](h H, what string) H {
	var zero H
	if h == zero {
		panic("repokit: nil " + what)
	}
	return h
}

// MustBind validates h then binds
func MustBind[H comparable, T any](b Binder[H, T], h H, what string) T {
	return b.Bind(Require(h, what))
}
