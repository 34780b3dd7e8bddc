package ports

import "context"

// DuplicateChecker provides idempotency checks for request submissions.
type DuplicateChecker interface {
	IsDuplicate(ctx context.Context, userID, reqType, description string) (bool, error)
	Mark(ctx context.Context, userID, reqType, description string) error
}
