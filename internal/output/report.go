package output

import (
	"github.com/fireplan/fire-calculator/internal/domain"
)

// Report bundles the results a single run can produce. Any field may be nil;
// formatters render only what is present.
type Report struct {
	Projection   *domain.ProjectionResult   `json:"projection,omitempty"`
	Accumulation *domain.AccumulationResult `json:"accumulation,omitempty"`
	Withdrawal   *domain.WithdrawalResult   `json:"withdrawal,omitempty"`
}
