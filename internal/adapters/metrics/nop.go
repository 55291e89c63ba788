package metrics

import (
	"github.com/dabron/scythe/internal/domain"
	"github.com/dabron/scythe/internal/ports"
)

// Nop discards all metrics. The CLI uses it.
type Nop struct{}

var _ ports.Recorder = Nop{}

func (Nop) SetupGenerated(_ domain.Features, _ int) {}

func (Nop) SetupRejected(_ string) {}

func (Nop) RepairApplied(_ domain.RepairKind) {}
