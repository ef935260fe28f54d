package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jask/icbutler/internal/task"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Buy milk and eggs", "milk"))
	assert.Equal(t, 0.0, Similarity("anything", "  "))
	assert.InDelta(t, 0.75, Similarity("milk", "silk"), 0.001)
}

func TestRankBySimilarity(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Description: "write report"},
		{ID: 2, Description: "buy milk"},
		{ID: 3, Description: "buy silk"},
		{ID: 4, Description: "milk the cow"},
	}

	got := RankBySimilarity(tasks, "buy milk", 0.5)

	ids := make([]uint64, 0, len(got))
	for _, t := range got {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []uint64{2, 3}, ids)
}
