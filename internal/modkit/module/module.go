// Package module defines what a codecheck module is and how modules find each other's ports
package module

import (
	"context"

	phttp "codecheck/internal/platform/net/http"
)

// Module is the contract api.Mount drives
// it lives apart from modkit so a module's ports package can import it without a cycle
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}

// Migrator is implemented by modules that own storage
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Migrate runs Migrate on every module that has one, stopping at the first error
func Migrate(ctx context.Context, mods ...Module) error {
	for _, m := range mods {
		mg, ok := m.(Migrator)
		if !ok {
			continue
		}
		if err := mg.Migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}
