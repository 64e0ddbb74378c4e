package module

import (
	"hyperflow/internal/services/projects/domain"
)

// Ports exposed by the projects module
type Ports struct {
	Registry  domain.RegistryPort
	Snapshots domain.SnapshotPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
