package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/refstats/referee-stats/internal/infrastructure/repository/memory"
)

func TestImportEntryPointsEmitRootSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	store := memory.NewStore()
	svc := NewImportService(store, nil)
	ctx := context.Background()

	_, err := svc.ImportFromJSON(ctx, writeTempFile(t, "matches.json", matchPayload))
	require.NoError(t, err)

	_, err = svc.ImportFromCSV(ctx, writeTempFile(t, "matches.csv",
		"__type,matchid\n"+matchTypeName+",6169913\n"))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, span := range recorder.Ended() {
		names[span.Name()] = true
		require.False(t, span.Parent().IsValid(), "%s must be a root span", span.Name())
	}
	require.True(t, names["ImportService.ImportFromJSON"], "missing ImportFromJSON span")
	require.True(t, names["ImportService.ImportFromCSV"], "missing ImportFromCSV span")
}

func TestStartUsecaseSpan_BlankNameIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "  ")
	if got != ctx {
		t.Fatal("blank name must return the context unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatal("blank name must not start a span")
	}
}
