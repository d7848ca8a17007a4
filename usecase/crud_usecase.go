package usecase

import "context"

// Crud is the operation set every resource exposes, parameterized by its
// create-request, update-request and response types. One implementation
// per entity supplies the validation and mapping rules; the HTTP layer
// stays generic.
//
// principalID is the authenticated caller's user id, zero when the
// request carried no credentials. Update with partial=false requires
// every writable field (PUT); partial=true touches only the fields
// present (PATCH).
type Crud[C any, U any, R any] interface {
	List(ctx context.Context) ([]R, error)
	ListPage(ctx context.Context, offset, limit int) ([]R, int64, error)
	Create(ctx context.Context, principalID uint, request *C) (R, error)
	Get(ctx context.Context, id uint) (R, error)
	Update(ctx context.Context, id uint, request *U, partial bool) (R, error)
	Delete(ctx context.Context, id uint) error
}
