package gradient

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/gradient/transfer"
	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError), "logging enabled by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	g := New(nil)
	test.Error(t, g.SetScalingFunction("x**2"))
	g.StoreToTransferFunctionPair(transfer.NewColorFunction(), transfer.NewOpacityFunction(), 0.0, 1.0)
	test.That(t, strings.Contains(buf.String(), "level=WARN"), buf.String())
	test.That(t, strings.Contains(buf.String(), "scaling=x**2"), buf.String())

	buf.Reset()
	test.Error(t, g.SetScalingFunction(""))
	g.StoreToTransferFunctionPair(transfer.NewColorFunction(), transfer.NewOpacityFunction(), 0.0, 1.0)
	test.String(t, buf.String(), "")

	SetLogger(nil)
	g.StoreToTransferFunctionPair(transfer.NewColorFunction(), transfer.NewOpacityFunction(), 0.0, 1.0)
	test.String(t, buf.String(), "")
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError))
}
