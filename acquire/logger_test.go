package acquire

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/koppilab/cryodaq-go/models"
)

func TestLoggerHeaderAndRows(t *testing.T) {
	p := &models.PARAMETERS{
		CHANNELS: []*models.CHANNEL{
			{NAME: "Dev1/ai0", LABEL: "Vsample", MULTIPLIER: 1},
			{NAME: "Dev1/ai1", LABEL: "T", MULTIPLIER: 100},
		},
		LOGFILE: filepath.Join(t.TempDir(), "meas.log"),
	}
	l, err := NewLogger(p)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if err := l.WriteBatch(Batch{Rows: [][]float64{
		{1754049600, 0.5, 18.57},
		{1754049600.1, 0.6, 18.55},
	}}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw, err := os.ReadFile(p.LOGFILE)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "# UUID: ") || len(strings.TrimPrefix(lines[0], "# UUID: ")) != 24 {
		t.Fatalf("bad UUID line: %q", lines[0])
	}
	if lines[1] != "Time Vsample T" {
		t.Fatalf("bad label line: %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); len(fields) != 3 {
		t.Fatalf("bad data row: %q", lines[2])
	}
}

func TestLoggerRawOutLabels(t *testing.T) {
	p := &models.PARAMETERS{
		CHANNELS: []*models.CHANNEL{{NAME: "Dev1/ai0", LABEL: "T", MULTIPLIER: 1}},
		RAWOUT:   true,
		LOGFILE:  filepath.Join(t.TempDir(), "meas.log"),
	}
	l, err := NewLogger(p)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer l.Close()

	raw, err := os.ReadFile(p.LOGFILE)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(string(raw), "\n")
	if lines[1] != "Time T Dev1/ai0" {
		t.Fatalf("bad label line: %q", lines[1])
	}
}
