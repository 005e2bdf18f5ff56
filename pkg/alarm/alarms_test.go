package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaiseAndClear(t *testing.T) {
	a := &ActiveAlarms{}

	assert.True(t, a.Raise("sensor"))
	assert.False(t, a.Raise("sensor"))

	assert.True(t, a.Clear("sensor"))
	assert.False(t, a.Clear("sensor"))

	// cleared alarms can fire again.
	assert.True(t, a.Raise("sensor"))
}

func TestAlarmsAreIndependent(t *testing.T) {
	a := &ActiveAlarms{}

	assert.True(t, a.Raise("sensor"))
	assert.True(t, a.Raise("bus"))
	assert.True(t, a.Clear("sensor"))
	assert.False(t, a.Clear("sensor"))
	assert.True(t, a.Clear("bus"))
}
