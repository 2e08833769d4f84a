package credentials

import "context"

// Store is the credential persistence capability. At most one live token
// exists per local profile; Save overwrites any previous one.
//
// Contract:
//   - Save: persist the token under the well-known key.
//   - Load: return the persisted token, or "" with a nil error when absent.
//   - Clear: delete the token; clearing an empty store is not an error.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
