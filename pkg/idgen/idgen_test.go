package idgen

import (
	"strconv"
	"testing"

	"github.com/notarydesk/priorities/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake_UniqueDecimal(t *testing.T) {
	gen := NewSnowflake(config.Default())
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.NextID()
		_, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err, id)
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	assert.Equal(t, "1", seq.NextID())
	assert.Equal(t, "2", seq.NextID())
	assert.Equal(t, "3", seq.NextID())
}
