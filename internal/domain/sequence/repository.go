package sequence

import "context"

// Well-known sequence names.
const (
	Payroll = "payroll"
)

type SequenceRepository interface {
	// Consume atomically increments the named counter, creating it at 1, and returns the new value.
	// It runs on the transaction carried by ctx so the id is rolled back with the entity using it.
	Consume(ctx context.Context, name string) (int64, error)
}
