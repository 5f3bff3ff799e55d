package acquire

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/koppilab/cryodaq-go/models"
)

// Logger appends processed batches to a whitespace-separated measurement
// log. Every run starts with a unique identifier line so logs that get
// concatenated or copied around can still be told apart.
type Logger struct {
	f *os.File
}

// NewLogger opens (appending) the log file and writes the run header:
// the UUID line and the column labels.
func NewLogger(p *models.PARAMETERS) (*Logger, error) {
	f, err := os.OpenFile(p.LOGFILE, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	id, err := runID()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString("# UUID: " + id + "\n")
	sb.WriteString("Time")
	for _, lbl := range p.Labels() {
		sb.WriteString(" " + lbl)
	}
	if p.RAWOUT {
		for _, ch := range p.CHANNELS {
			sb.WriteString(" " + ch.NAME)
		}
	}
	sb.WriteString("\n")
	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Logger{f: f}, nil
}

// WriteBatch appends one row per batch row.
func (l *Logger) WriteBatch(b Batch) error {
	var sb strings.Builder
	for _, row := range b.Rows {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	_, err := l.f.WriteString(sb.String())
	return err
}

func (l *Logger) Close() error { return l.f.Close() }

func runID() (string, error) {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
