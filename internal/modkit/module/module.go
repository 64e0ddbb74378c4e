// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "hyperflow/internal/platform/net/http"
)

// Module is the minimal contract a service module satisfies.
// Lives in its own package so modules exporting Ports types avoid import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
