package assignment

import (
	"fmt"
	"math/rand"
	"testing"

	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranks(a *Assignment) []int {
	out := make([]int, len(a.Entries))
	for i, e := range a.Entries {
		out[i] = e.Rank
	}
	return out
}

func requireContiguous(t *testing.T, a *Assignment) {
	t.Helper()
	seen := map[string]bool{}
	for i, e := range a.Entries {
		require.Equal(t, i+1, e.Rank, "rank of %s", e.PriorityID)
		require.False(t, seen[e.PriorityID], "priority %s repeated", e.PriorityID)
		seen[e.PriorityID] = true
	}
}

func TestRestore(t *testing.T) {
	t.Run("orders by stored rank and renumbers", func(t *testing.T) {
		a := Restore("e1", []Entry{
			{PriorityID: "p3", Rank: 7},
			{PriorityID: "p1", Rank: 2},
			{PriorityID: "p2", Rank: 5},
		})
		assert.Equal(t, []string{"p1", "p2", "p3"}, a.PriorityIDs())
		assert.Equal(t, []int{1, 2, 3}, ranks(a))
	})

	t.Run("ties keep stored order", func(t *testing.T) {
		a := Restore("e1", []Entry{
			{PriorityID: "b", Rank: 1},
			{PriorityID: "a", Rank: 1},
		})
		assert.Equal(t, []string{"b", "a"}, a.PriorityIDs())
	})

	t.Run("drops repeated priorities", func(t *testing.T) {
		a := Restore("e1", []Entry{
			{PriorityID: "p1", Rank: 1},
			{PriorityID: "p2", Rank: 2},
			{PriorityID: "p1", Rank: 3},
		})
		assert.Equal(t, []string{"p1", "p2"}, a.PriorityIDs())
		requireContiguous(t, a)
	})

	t.Run("does not alias input", func(t *testing.T) {
		in := []Entry{{PriorityID: "p2", Rank: 2}, {PriorityID: "p1", Rank: 1}}
		Restore("e1", in)
		assert.Equal(t, "p2", in[0].PriorityID)
	})
}

func TestAssignment_Add(t *testing.T) {
	a := &Assignment{EmployeeID: "e1"}
	require.NoError(t, a.Add("p1"))
	require.NoError(t, a.Add("p2"))
	assert.Equal(t, []Entry{{"p1", 1}, {"p2", 2}}, a.Entries)

	err := a.Add("p1")
	require.Error(t, err)
	assert.True(t, domainerr.IsDuplicateAssignment(err))
	assert.Equal(t, []Entry{{"p1", 1}, {"p2", 2}}, a.Entries)
}

func TestAssignment_Remove(t *testing.T) {
	a := &Assignment{EmployeeID: "e1"}
	require.NoError(t, a.Reset([]string{"p1", "p2", "p3"}))

	assert.False(t, a.Remove("missing"))
	assert.True(t, a.Remove("p2"))
	assert.Equal(t, []Entry{{"p1", 1}, {"p3", 2}}, a.Entries)

	assert.True(t, a.Remove("p1"))
	assert.True(t, a.Remove("p3"))
	assert.True(t, a.IsEmpty())
}

func TestAssignment_MoveBoundaries(t *testing.T) {
	a := &Assignment{EmployeeID: "e1"}
	require.NoError(t, a.Reset([]string{"p1", "p2", "p3"}))

	assert.False(t, a.MoveUp("p1"))
	assert.False(t, a.MoveDown("p3"))
	assert.False(t, a.MoveUp("missing"))
	assert.False(t, a.MoveDown("missing"))
	assert.Equal(t, []string{"p1", "p2", "p3"}, a.PriorityIDs())

	assert.True(t, a.MoveUp("p3"))
	assert.Equal(t, []string{"p1", "p3", "p2"}, a.PriorityIDs())
	assert.True(t, a.MoveDown("p1"))
	assert.Equal(t, []string{"p3", "p1", "p2"}, a.PriorityIDs())
	requireContiguous(t, a)
}

func TestAssignment_Reset(t *testing.T) {
	a := &Assignment{EmployeeID: "e1"}
	require.NoError(t, a.Reset([]string{"p2", "p1"}))
	assert.Equal(t, []Entry{{"p2", 1}, {"p1", 2}}, a.Entries)

	err := a.Reset([]string{"p3", "p3"})
	assert.True(t, domainerr.IsDuplicateAssignment(err))
	assert.Equal(t, []string{"p2", "p1"}, a.PriorityIDs())

	require.NoError(t, a.Reset(nil))
	assert.True(t, a.IsEmpty())
}

func TestAssignment_Clone(t *testing.T) {
	a := &Assignment{EmployeeID: "e1"}
	require.NoError(t, a.Reset([]string{"p1", "p2"}))
	c := a.Clone()
	c.MoveDown("p1")
	assert.Equal(t, []string{"p1", "p2"}, a.PriorityIDs())
	assert.Equal(t, []string{"p2", "p1"}, c.PriorityIDs())
}

// Random operation sequences are replayed against a plain slice model. After
// every step ranks are exactly 1..n and the order matches the model.
func TestAssignment_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := make([]string, 8)
	for i := range pool {
		pool[i] = fmt.Sprintf("p%d", i)
	}

	for round := 0; round < 200; round++ {
		a := &Assignment{EmployeeID: "e1"}
		var model []string
		for step := 0; step < 50; step++ {
			id := pool[rng.Intn(len(pool))]
			at := indexOf(model, id)
			switch rng.Intn(4) {
			case 0:
				err := a.Add(id)
				if at >= 0 {
					require.True(t, domainerr.IsDuplicateAssignment(err))
				} else {
					require.NoError(t, err)
					model = append(model, id)
				}
			case 1:
				require.Equal(t, at >= 0, a.Remove(id))
				if at >= 0 {
					model = append(model[:at], model[at+1:]...)
				}
			case 2:
				moved := a.MoveUp(id)
				require.Equal(t, at > 0, moved)
				if moved {
					model[at], model[at-1] = model[at-1], model[at]
				}
			case 3:
				moved := a.MoveDown(id)
				require.Equal(t, at >= 0 && at < len(model)-1, moved)
				if moved {
					model[at], model[at+1] = model[at+1], model[at]
				}
			}
			requireContiguous(t, a)
			require.Equal(t, len(model), a.Len())
			if len(model) > 0 {
				require.Equal(t, model, a.PriorityIDs())
			}
		}
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
