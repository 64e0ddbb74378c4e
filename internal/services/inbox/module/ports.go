package module

import (
	"hyperflow/internal/services/inbox/domain"
)

// Ports exposed by the inbox module
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
	Marker domain.MarkerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
