package pipeline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/footgen/pkg/emit"
	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
	"github.com/matzehuels/footgen/pkg/footprint/vhdci"
)

// memorySink collects emitted documents by name.
type memorySink struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemorySink() *memorySink { return &memorySink{docs: make(map[string][]byte)} }

func (m *memorySink) Emit(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = append([]byte(nil), data...)
	return nil
}

func (m *memorySink) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

var fixedTime = time.Unix(0x5F00AB12, 0)

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func TestConnector(t *testing.T) {
	var buf bytes.Buffer
	res, err := quietRunner().Connector(context.Background(), emit.NewStream(&buf), vhdci.Default)
	if err != nil {
		t.Fatalf("Connector() error: %v", err)
	}
	if res.Stats.Footprints != 1 || res.Names[0] != "VHDCI" {
		t.Errorf("result = %+v, want one VHDCI footprint", res)
	}
	if res.Stats.Bytes != buf.Len() {
		t.Errorf("Stats.Bytes = %d, want %d", res.Stats.Bytes, buf.Len())
	}
	if !strings.HasPrefix(buf.String(), "(module VHDCI (layer F.Cu) (tedit 5478A913)\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
	if got := strings.Count(buf.String(), "(pad "); got != 68 {
		t.Errorf("pad count = %d, want 68", got)
	}
}

func TestConnectorInvalidGeometry(t *testing.T) {
	g := vhdci.Default
	g.Pins = 7
	_, err := quietRunner().Connector(context.Background(), newMemorySink(), g)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Connector() error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestMountingHoles(t *testing.T) {
	sink := newMemorySink()
	table := mountinghole.BuildTable()

	res, err := quietRunner().MountingHoles(context.Background(), sink, table, Options{Timestamp: fixedTime})
	if err != nil {
		t.Fatalf("MountingHoles() error: %v", err)
	}
	if res.Stats.Footprints != len(table) || sink.len() != len(table) {
		t.Fatalf("generated %d / emitted %d, want %d", res.Stats.Footprints, sink.len(), len(table))
	}

	for i, c := range table {
		if res.Names[i] != mountinghole.Name(c) {
			t.Errorf("Names[%d] = %s, want %s", i, res.Names[i], mountinghole.Name(c))
		}
		data, ok := sink.docs[mountinghole.FileName(c)]
		if !ok {
			t.Errorf("missing %s", mountinghole.FileName(c))
			continue
		}
		header := "(module " + mountinghole.Name(c) + " (layer F.Cu) (tedit 5F00AB12)\n"
		if !strings.HasPrefix(string(data), header) {
			t.Errorf("%s: header = %q", mountinghole.Name(c), strings.SplitN(string(data), "\n", 2)[0])
		}
	}
}

func TestMountingHolesParallelMatchesSequential(t *testing.T) {
	table := mountinghole.BuildTable()
	seq, par := newMemorySink(), newMemorySink()

	if _, err := quietRunner().MountingHoles(context.Background(), seq, table, Options{Timestamp: fixedTime, Jobs: 1}); err != nil {
		t.Fatalf("sequential run error: %v", err)
	}
	res, err := quietRunner().MountingHoles(context.Background(), par, table, Options{Timestamp: fixedTime, Jobs: 8})
	if err != nil {
		t.Fatalf("parallel run error: %v", err)
	}

	for name, want := range seq.docs {
		if got := par.docs[name]; !bytes.Equal(got, want) {
			t.Errorf("%s differs between sequential and parallel runs", name)
		}
	}
	if res.Names[0] != mountinghole.Name(table[0]) {
		t.Errorf("Names must stay in table order, got %s first", res.Names[0])
	}
}

func TestMountingHolesValidatesBeforeWriting(t *testing.T) {
	tests := []struct {
		name  string
		extra mountinghole.Config
		code  errors.Code
	}{
		{"duplicate identifier", mountinghole.Config{Drill: 3.2, Labels: []string{"M3"}}, errors.ErrCodeDuplicateName},
		{"pad smaller than drill", mountinghole.Config{Drill: 3.2, Pad: mountinghole.Diameter(1), Labels: []string{"Bad"}}, errors.ErrCodeInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newMemorySink()
			table := append(mountinghole.BuildTable(), tt.extra)
			_, err := quietRunner().MountingHoles(context.Background(), sink, table, Options{})
			if !errors.Is(err, tt.code) {
				t.Errorf("MountingHoles() error = %v, want %v", err, tt.code)
			}
			if sink.len() != 0 {
				t.Errorf("emitted %d documents before failing, want 0", sink.len())
			}
		})
	}
}

func TestMountingHolesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner().MountingHoles(ctx, newMemorySink(), mountinghole.BuildTable(), Options{})
	if err == nil {
		t.Fatal("MountingHoles() with cancelled context should fail")
	}
}

type failSink struct{}

func (f *failSink) Emit(ctx context.Context, name string, data []byte) error {
	return errors.New(errors.ErrCodeIO, "disk full writing %s", name)
}

func TestMountingHolesSinkError(t *testing.T) {
	_, err := quietRunner().MountingHoles(context.Background(), &failSink{}, mountinghole.BuildTable(), Options{Jobs: 4})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("MountingHoles() error = %v, want %v", err, errors.ErrCodeIO)
	}
}

func TestOptions(t *testing.T) {
	var o Options
	o.SetDefaults(fixedTime)
	if o.Jobs != DefaultJobs || !o.Timestamp.Equal(fixedTime) || o.Logger == nil {
		t.Errorf("SetDefaults() = %+v", o)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	tests := []struct {
		name string
		opts Options
	}{
		{"negative jobs", Options{Jobs: -1, Timestamp: fixedTime}},
		{"too many jobs", Options{Jobs: MaxJobs + 1, Timestamp: fixedTime}},
		{"pre-epoch", Options{Jobs: 1, Timestamp: time.Unix(-10, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Validate() error = %v, want %v", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestTedit(t *testing.T) {
	if got := Tedit(time.Unix(0x5478A913, 0)); got != 0x5478A913 {
		t.Errorf("Tedit() = %X, want 5478A913", got)
	}
}
