package components

import (
	"context"
	"strings"
)

// Router dispatches component identifiers to the manager that
// understands them. sdkmanager packages carry a "pkg;version" shape;
// everything else installs through cargo.
type Router struct {
	SDK   Manager
	Cargo Manager
}

func (r *Router) Install(ctx context.Context, id string) error {
	if strings.Contains(id, ";") {
		return r.SDK.Install(ctx, id)
	}
	return r.Cargo.Install(ctx, id)
}
