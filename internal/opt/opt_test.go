package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobSchedule/internal/pms"
)

func TestEmpty(t *testing.T) {
	inst, err := pms.NewInstance(nil, 3)
	require.NoError(t, err)

	res := Empty(inst)
	assert.Equal(t, int64(0), res.Makespan())
	assert.Equal(t, 3, res.Schedule.NumMachines())
	require.NoError(t, res.Schedule.Validate(inst))
}
