package ports

import "github.com/dabron/scythe/internal/domain"

// Recorder receives run outcomes for metrics.
type Recorder interface {
	SetupGenerated(f domain.Features, players int)
	SetupRejected(reason string)
	RepairApplied(kind domain.RepairKind)
}
