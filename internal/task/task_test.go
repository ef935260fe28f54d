package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jask/icbutler/internal/task"
)

func TestValidateDescription(t *testing.T) {
	tests := map[string]struct {
		in     string
		exp    string
		expErr error
	}{
		"Plain text is kept.": {
			in:  "buy milk",
			exp: "buy milk",
		},
		"Surrounding whitespace is trimmed.": {
			in:  "  write report \n",
			exp: "write report",
		},
		"Empty input is rejected.": {
			in:     "",
			expErr: task.ErrEmptyDescription,
		},
		"Whitespace only input is rejected.": {
			in:     "   \t ",
			expErr: task.ErrEmptyDescription,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := task.ValidateDescription(test.in)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.exp, got)
		})
	}
}
