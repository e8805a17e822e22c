package selectionRepo

import (
	"testing"

	"gotest.tools/assert"
)

func TestDedupSelectionsCollapsesDuplicates(t *testing.T) {
	rows := dedupSelections(7, []uint{5, 5, 5})

	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0].UserID, uint(7))
	assert.Equal(t, rows[0].RestaurantID, uint(5))
	assert.Assert(t, !rows[0].SelectedAt.IsZero())
}

func TestDedupSelectionsKeepsFirstOccurrence(t *testing.T) {
	rows := dedupSelections(1, []uint{3, 1, 3, 2, 1})

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RestaurantID)
	}
	assert.DeepEqual(t, ids, []uint{3, 1, 2})
}

func TestDedupSelectionsEmptyInput(t *testing.T) {
	assert.Equal(t, len(dedupSelections(1, nil)), 0)
	assert.Equal(t, len(dedupSelections(1, []uint{})), 0)
}
