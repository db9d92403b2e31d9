package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), Options{ServiceName: "test"})
	assert.Error(t, err)
	assert.Nil(t, shutdown)
	assert.Contains(t, err.Error(), "endpoint is required")
}
