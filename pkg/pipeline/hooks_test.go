package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
	"github.com/matzehuels/footgen/pkg/observability"
)

type recordingHooks struct {
	observability.NoopPipelineHooks

	mu         sync.Mutex
	started    []string
	footprints int
	completed  int
	bytes      int
	lastErr    error
}

func (h *recordingHooks) OnRunStart(_ context.Context, family string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, family)
}

func (h *recordingHooks) OnFootprintComplete(context.Context, string, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.footprints++
}

func (h *recordingHooks) OnRunComplete(_ context.Context, _ string, n, size int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed += n
	h.bytes += size
	h.lastErr = err
}

func TestRunnerHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	table := mountinghole.BuildTable()[:10]
	res, err := quietRunner().MountingHoles(ctx, newMemorySink(), table, Options{Jobs: 3, Timestamp: fixedTime})
	if err != nil {
		t.Fatalf("MountingHoles() error: %v", err)
	}

	if len(hooks.started) != 1 || hooks.started[0] != FamilyMountingHole {
		t.Errorf("started = %v, want [%s]", hooks.started, FamilyMountingHole)
	}
	if hooks.footprints != 10 || hooks.completed != 10 {
		t.Errorf("footprints = %d, completed = %d, want 10", hooks.footprints, hooks.completed)
	}
	if hooks.bytes != res.Stats.Bytes {
		t.Errorf("hook bytes = %d, want %d", hooks.bytes, res.Stats.Bytes)
	}

	_, err = quietRunner().MountingHoles(ctx, &failSink{}, table, Options{Timestamp: fixedTime})
	if err == nil || hooks.lastErr == nil {
		t.Error("failed run should report its error to OnRunComplete")
	}
}
