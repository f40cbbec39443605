package v1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storecatalog/internal/core/id"
	"storecatalog/internal/infrastructure/http/v1/dto"
)

func mustID(t *testing.T, s string) id.ID {
	t.Helper()
	v, err := id.Parse(s)
	require.NoError(t, err)
	return v
}

func productIDs(items []dto.ProductResponse) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
