package appctx

import (
	"context"
	"math/rand"
	"strings"
)

// We define unexported key types to prevent key collisions with other packages.
type runIDCtxKey struct{}

// WithNewRunID ensures a run ID is present in the context.
// If one already exists, it returns the original context unmodified.
func WithNewRunID(ctx context.Context) context.Context {
	if _, ok := RunIDFrom(ctx); ok {
		return ctx
	}

	return context.WithValue(ctx, runIDCtxKey{}, generateRunID())
}

// RunIDFrom extracts a run ID string from the context, if one exists.
func RunIDFrom(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(runIDCtxKey{}).(string)
	if ok {
		return runID, true
	}
	return "", false
}

// generateRunID creates a random id of 16 hex digits in two dash-separated
// groups, e.g. "3f9a0c1e-77b2d405".
func generateRunID() string {
	sb := strings.Builder{}
	sb.Grow(17)

	q := rand.Uint64()
	for i := 0; i < 16; i++ {
		r := uint8(q & 0xF)
		q >>= 4
		if r > 9 {
			r += 0x27 // 'a' - 10
		}
		sb.WriteByte(r + 0x30) // '0'
		if i == 7 {
			sb.WriteByte(0x2D) // '-'
		}
	}
	return sb.String()
}
