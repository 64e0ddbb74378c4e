package module

import (
	"hyperflow/internal/services/decisions/domain"
)

// Ports exposed by the decisions module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
