package acquire

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/koppilab/cryodaq-go/models"
	"github.com/koppilab/cryodaq-go/thermo"
)

type stubSource struct {
	chunks []Chunk
	i      int
}

func (s *stubSource) Read(ctx context.Context) (Chunk, error) {
	if s.i < len(s.chunks) {
		c := s.chunks[s.i]
		s.i++
		return c, nil
	}
	<-ctx.Done()
	return Chunk{}, ctx.Err()
}

func testParams() *models.PARAMETERS {
	return &models.PARAMETERS{
		CHANNELS: []*models.CHANNEL{
			{NAME: "Dev1/ai0", LABEL: "Vsample", MULTIPLIER: 1},
			{NAME: "Dev1/ai1", LABEL: "T", MULTIPLIER: 100},
		},
		FREQ:     10,
		NSAMPLES: 4,
		NLOGGING: 1,
		THERMCH:  1,
		CALIB:    "Dipstick",
	}
}

func runOneBatch(t *testing.T, p *models.PARAMETERS, src Source, cfg Config) Batch {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var got Batch
	err := Run(ctx, src, p, func() Config { return cfg }, func(b Batch) {
		got = b
		cancel()
	})
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v", err)
	}
	if got.Rows == nil {
		t.Fatalf("no batch delivered")
	}
	return got
}

func TestRunAppliesMultipliersAndCalibration(t *testing.T) {
	p := testParams()
	ts := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	src := &stubSource{chunks: []Chunk{{
		Timestamp: ts,
		Samples: [][]float64{
			{1.5, 2.5, 3.5, 4.5},
			{10, 8, 6, 5}, // bridge units; x100 puts these on the dipstick curve
		},
	}}}
	cfg := Config{Multipliers: p.Multipliers(), ThermCh: 1, Curve: thermo.Dipstick}

	b := runOneBatch(t, p, src, cfg)
	if len(b.Rows) != 4 {
		t.Fatalf("want 4 rows, got %d", len(b.Rows))
	}
	for i, row := range b.Rows {
		if len(row) != 3 {
			t.Fatalf("row %d: want 3 columns, got %d", i, len(row))
		}
	}
	// Plain channel: multiplier 1, values pass through.
	if b.Rows[0][1] != 1.5 || b.Rows[3][1] != 4.5 {
		t.Fatalf("channel 0 mangled: %v", b.Rows)
	}
	// Thermometer channel: x100 then the dipstick curve.
	want := thermo.Evaluate(thermo.Dipstick, 10, 100).T
	if math.Abs(b.Rows[0][2]-want) > 1e-9 {
		t.Fatalf("thermometer sample 0: got %v, want %v", b.Rows[0][2], want)
	}
	// Sample times are back-computed from the chunk timestamp, earliest first.
	tsSec := float64(ts.UnixNano()) / 1e9
	if math.Abs(b.Rows[3][0]-tsSec) > 1e-9 {
		t.Fatalf("last row time %v, want %v", b.Rows[3][0], tsSec)
	}
	if math.Abs(b.Rows[0][0]-(tsSec-3.0/p.FREQ)) > 1e-9 {
		t.Fatalf("first row time %v, want %v", b.Rows[0][0], tsSec-3.0/p.FREQ)
	}
}

func TestRunChunkAveragingAveragesBeforeCalibration(t *testing.T) {
	p := testParams()
	p.AVERAGE = true
	src := &stubSource{chunks: []Chunk{{
		Timestamp: time.Now(),
		Samples: [][]float64{
			{1, 2, 3, 4},
			{9, 10, 11, 10},
		},
	}}}
	cfg := Config{Multipliers: p.Multipliers(), ThermCh: 1, Curve: thermo.Dipstick}

	b := runOneBatch(t, p, src, cfg)
	if len(b.Rows) != 1 {
		t.Fatalf("averaged chunk should yield one row, got %d", len(b.Rows))
	}
	if got := b.Rows[0][1]; math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("channel 0 average: got %v, want 2.5", got)
	}
	// The curve is nonlinear, so the mean must be taken on the raw reading
	// and converted once, not converted per sample and then averaged.
	want := thermo.Evaluate(thermo.Dipstick, 10, 100).T
	if got := b.Rows[0][2]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("thermometer average: got %v, want %v", got, want)
	}
}

func TestRunRawOutAppendsUnscaledColumns(t *testing.T) {
	p := testParams()
	p.RAWOUT = true
	src := &stubSource{chunks: []Chunk{{
		Timestamp: time.Now(),
		Samples:   [][]float64{{1, 1, 1, 1}, {7, 7, 7, 7}},
	}}}
	cfg := Config{Multipliers: p.Multipliers(), ThermCh: 1, Curve: thermo.Dipstick}

	b := runOneBatch(t, p, src, cfg)
	row := b.Rows[0]
	if len(row) != 5 {
		t.Fatalf("want time + 2 processed + 2 raw columns, got %d", len(row))
	}
	if row[3] != 1 || row[4] != 7 {
		t.Fatalf("raw columns mangled: %v", row)
	}
}

func TestRunPassthroughCurveLeavesValues(t *testing.T) {
	p := testParams()
	p.CALIB = "None"
	src := &stubSource{chunks: []Chunk{{
		Timestamp: time.Now(),
		Samples:   [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}},
	}}}
	cfg := Config{Multipliers: p.Multipliers(), ThermCh: 1, Curve: thermo.None}

	b := runOneBatch(t, p, src, cfg)
	if got := b.Rows[0][2]; got != 500 {
		t.Fatalf("passthrough thermometer column: got %v, want 500", got)
	}
}

func TestSimSourceShape(t *testing.T) {
	p := testParams()
	p.FREQ = 10000
	src := NewSimSource(p, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	chunk, err := src.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(chunk.Samples) != 2 {
		t.Fatalf("want 2 channels, got %d", len(chunk.Samples))
	}
	for ch, s := range chunk.Samples {
		if len(s) != p.NSAMPLES {
			t.Fatalf("channel %d: want %d samples, got %d", ch, p.NSAMPLES, len(s))
		}
		for _, v := range s {
			if v < 900 || v > 1100 {
				t.Fatalf("channel %d: sample %v far from the 1 kohm working point", ch, v)
			}
		}
	}
}
