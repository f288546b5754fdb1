package op

import "context"

// A Reader resolves a secret reference string (op://vault/item/field) to its
// value. Implementations must not spawn per-reference subprocesses; readers
// resolve in-process against the 1Password APIs.
type Reader interface {
	Read(ctx context.Context, ref string) (string, error)
}
