package gridmesh

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeModule_DeltaAdvances(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{}).Build()

	app.RunFrame()
	time.Sleep(5 * time.Millisecond)
	app.RunFrame()

	clock, ok := app.resources[reflect.TypeOf(Time{})].(*Time)
	require.True(t, ok)
	assert.GreaterOrEqual(t, clock.Dt, 5*time.Millisecond)
	assert.False(t, clock.Time.IsZero())
}
