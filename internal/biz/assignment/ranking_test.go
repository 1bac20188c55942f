package assignment

import (
	"testing"

	"github.com/notarydesk/priorities/internal/biz/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	catalog := map[string]*priority.Priority{
		"p1": {ID: "p1", Name: "Atendimento"},
		"p2": {ID: "p2", Name: "Protocolo"},
	}

	t.Run("nil assignment is empty", func(t *testing.T) {
		got := Rank(nil, catalog)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("skips dangling priorities", func(t *testing.T) {
		a := Restore("e1", []Entry{{"p2", 1}, {"gone", 2}, {"p1", 3}})
		got := Rank(a, catalog)
		require.Len(t, got, 2)

		assert.Equal(t, "p2", got[0].Priority.ID)
		assert.Equal(t, 1, got[0].Rank)
		assert.Equal(t, 1, got[0].Order)

		assert.Equal(t, "p1", got[1].Priority.ID)
		assert.Equal(t, 2, got[1].Rank)
		assert.Equal(t, 3, got[1].Order)
	})
}
