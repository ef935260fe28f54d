package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/icbutler/internal/task"
)

// Similarity scores how close a description is to query, in [0, 1].
// A description containing the query scores 1.
func Similarity(description, query string) float64 {
	d := strings.ToUpper(strings.TrimSpace(description))
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	if strings.Contains(d, q) {
		return 1
	}
	maxlen := max(len(d), len(q))
	return 1 - float64(levenshtein.ComputeDistance(d, q))/float64(maxlen)
}

// RankBySimilarity returns the tasks scoring at least minScore against query,
// best match first. Ties keep id order.
func RankBySimilarity(tasks []task.Task, query string, minScore float64) []task.Task {
	type scored struct {
		t     task.Task
		score float64
	}
	var ranked []scored
	for _, t := range tasks {
		s := Similarity(t.Description, query)
		if s < minScore {
			continue
		}
		ranked = append(ranked, scored{t: t, score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].t.ID < ranked[j].t.ID
	})
	out := make([]task.Task, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.t)
	}
	return out
}
