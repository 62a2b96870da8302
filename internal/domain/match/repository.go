package match

import "context"

// Repository loads the history dataset in its stored order.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
}

// Writer replaces the stored dataset wholesale.
type Writer interface {
	ReplaceAll(ctx context.Context, records []Record) error
}
