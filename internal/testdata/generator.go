// Package testdata generates sample tasks for demos and manual testing.
package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/icbutler/internal/task"
)

var (
	verbs   = []string{"Buy", "Call", "Write", "Review", "Book", "Fix", "Plan", "Email"}
	objects = []string{"milk", "mom", "report", "pull request", "dentist", "bike", "trip", "landlord"}
)

// Description returns a sample task description.
func Description(r *rand.Rand) string {
	return verbs[r.Intn(len(verbs))] + " " + objects[r.Intn(len(objects))]
}

// Seed adds n sample tasks through svc and returns their ids in insert order.
// A nil r uses a fixed seed so runs are reproducible.
func Seed(ctx context.Context, svc task.Service, n int, r *rand.Rand) ([]uint64, error) {
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		id, err := svc.AddTask(ctx, Description(r))
		if err != nil {
			return ids, fmt.Errorf("seed task %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
