package telemetry

import (
	"context"
	"testing"

	"ctchen222/exercise-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_EnabledWithoutCollector(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown, err := InitOtel(context.Background(), config.Telemetry{
		Enabled:     true,
		ServiceName: "exercise-tracker-test",
	})
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "probe")
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
