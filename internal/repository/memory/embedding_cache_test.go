package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddingCache(t *testing.T) {
	ctx := context.Background()
	c := NewEmbeddingCache()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	vec := []float32{0.1, 0.2}
	c.Set(ctx, "k", vec)
	vec[0] = 9

	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []float32{0.1, 0.2}, got)
	assert.Equal(t, 1, c.Len())
}

func TestExpiringEmbeddingCache(t *testing.T) {
	tests := []struct {
		name    string
		wait    time.Duration
		wantHit bool
		wantLen int
	}{
		{name: "fresh entry is served", wait: 0, wantHit: true, wantLen: 1},
		{name: "entry expires after ttl", wait: 200 * time.Millisecond, wantHit: false, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c := NewExpiringEmbeddingCache(50 * time.Millisecond)

			c.Set(ctx, "where to surf in arugam bay", []float32{0.4})
			time.Sleep(tt.wait)

			_, ok := c.Get(ctx, "where to surf in arugam bay")
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.wantLen, c.Len())
		})
	}
}
