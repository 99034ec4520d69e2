package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recorder() (*tracetest.SpanRecorder, Otel) {
	spans := tracetest.NewSpanRecorder()

	return spans, &otelImpl{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(spans))}
}

func TestScope_TraceIfErrorSeesTheReturnedError(t *testing.T) {
	spans, otl := recorder()

	failing := func() (err error) {
		_, scope := otl.NewScope(context.Background(), "service", "service.show.Create")
		defer scope.End()
		defer scope.TraceIfError(&err)

		err = errors.New("slot taken")

		return err
	}

	require.Error(t, failing())

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "slot taken", ended[0].Status().Description)
}

func TestScope_TraceIfErrorIgnoresSuccess(t *testing.T) {
	spans, otl := recorder()

	succeeding := func() (err error) {
		_, scope := otl.NewScope(context.Background(), "service", "service.show.Delete")
		defer scope.End()
		defer scope.TraceIfError(&err)

		return nil
	}

	require.NoError(t, succeeding())

	require.Len(t, spans.Ended(), 1)
	assert.Equal(t, codes.Unset, spans.Ended()[0].Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	spans, otl := recorder()

	_, scope := otl.NewScope(context.Background(), "service", "service.quiz.Next")
	scope.SetAttributes(map[string]any{
		"quiz.category": 3,
		"quiz.previous": []int{1, 4},
		"quiz.all":      false,
	})
	scope.End()

	attrs := spans.Ended()[0].Attributes()
	assert.Contains(t, attrs, attribute.Int("quiz.category", 3))
	assert.Contains(t, attrs, attribute.IntSlice("quiz.previous", []int{1, 4}))
	assert.Contains(t, attrs, attribute.Bool("quiz.all", false))
}
