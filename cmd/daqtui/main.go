package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/koppilab/cryodaq-go/acquire"
	"github.com/koppilab/cryodaq-go/models"
	serialpkg "github.com/koppilab/cryodaq-go/serial"
	"github.com/koppilab/cryodaq-go/thermo"
)

type screen int

const (
	screenEntry screen = iota
	screenLive
)

// session bundles everything a running measurement owns.
type session struct {
	p      *models.PARAMETERS
	bridge *serialpkg.Bridge
	logger *acquire.Logger
	src    acquire.Source
	labels []string
	port   string
}

func (s *session) close() {
	if s.logger != nil {
		_ = s.logger.Close()
		s.logger = nil
	}
	if s.bridge != nil {
		_ = s.bridge.Close()
		s.bridge = nil
	}
}

type model struct {
	scr screen

	configInput textinput.Model
	sim         bool

	sess     *session
	lastErr  error
	infoLine string

	lastRow   []float64
	nBatches  int
	startedAt time.Time

	runCtx    context.Context
	runCancel context.CancelFunc
	batches   chan acquire.Batch
	runErr    chan error
	runID     int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tempStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

func initialModel() model {
	in := textinput.New()
	in.Placeholder = "Path to config.json"
	in.Focus()
	in.CharLimit = 512
	in.Width = 60

	m := model{
		scr:         screenEntry,
		configInput: in,
	}
	if len(os.Args) > 1 && strings.TrimSpace(os.Args[1]) != "" {
		m.configInput.SetValue(os.Args[1])
		m.configInput.CursorEnd()
	}
	return m
}

type errMsg struct{ err error }

type startedMsg struct {
	runID int
	sess  *session
}

type batchMsg struct {
	runID int
	b     acquire.Batch
}

type runDoneMsg struct {
	runID int
	err   error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.stopRun()
			return m, tea.Quit
		}
		switch m.scr {
		case screenEntry:
			return m.updateEntryKey(msg)
		case screenLive:
			return m.updateLiveKey(msg)
		}

	case errMsg:
		m.lastErr = msg.err
		return m, nil

	case startedMsg:
		if msg.runID != m.runID {
			msg.sess.close()
			return m, nil
		}
		m.sess = msg.sess
		m.lastErr = nil
		m.lastRow = nil
		m.nBatches = 0
		m.startedAt = time.Now()
		m.scr = screenLive
		if msg.sess.port != "" {
			m.infoLine = fmt.Sprintf("Bridge on %s, curve %s", msg.sess.port, msg.sess.p.CALIB)
		} else {
			m.infoLine = fmt.Sprintf("Simulated source, curve %s", msg.sess.p.CALIB)
		}
		m.batches = make(chan acquire.Batch, 8)
		m.runErr = make(chan error, 1)
		go runAcquisition(m.runCtx, msg.sess, m.batches, m.runErr)
		return m, tea.Batch(m.waitBatch(msg.runID), m.waitDone(msg.runID))

	case batchMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		if len(msg.b.Rows) > 0 {
			m.lastRow = msg.b.Rows[len(msg.b.Rows)-1]
		}
		m.nBatches++
		return m, m.waitBatch(msg.runID)

	case runDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		if msg.err != nil && msg.err != context.Canceled {
			m.lastErr = msg.err
		}
		m.stopRun()
		m.scr = screenEntry
		m.infoLine = "Measurement stopped."
		return m, nil
	}

	if m.scr == screenEntry {
		var cmd tea.Cmd
		m.configInput, cmd = m.configInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateEntryKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "enter":
		path := strings.TrimSpace(m.configInput.Value())
		if path == "" {
			return m, func() tea.Msg { return errMsg{err: fmt.Errorf("config path is empty")} }
		}
		m.stopRun()
		m.runID++
		m.runCtx, m.runCancel = context.WithCancel(context.Background())
		return m, m.startCmd(m.runID, path, m.sim)
	case "s":
		m.sim = !m.sim
		return m, nil
	}
	var cmd tea.Cmd
	m.configInput, cmd = m.configInput.Update(k)
	return m, cmd
}

func (m model) updateLiveKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "q", "b", "esc":
		m.stopRun()
		m.runID++
		m.scr = screenEntry
		m.infoLine = "Measurement stopped."
		return m, nil
	}
	return m, nil
}

func (m *model) stopRun() {
	if m.runCancel != nil {
		m.runCancel()
		m.runCancel = nil
	}
	m.runCtx = nil
	if m.sess != nil {
		m.sess.close()
		m.sess = nil
	}
}

func (m model) startCmd(runID int, path string, sim bool) tea.Cmd {
	return func() tea.Msg {
		p, err := models.Load(path)
		if err != nil {
			return errMsg{err: err}
		}
		sess := &session{p: p, labels: p.Labels()}
		if sim || p.SERIAL == nil {
			sess.src = acquire.NewSimSource(p, time.Now().UnixNano())
		} else {
			if strings.TrimSpace(p.SERIAL.PORT) == "" {
				detected := serialpkg.AutoDetectPort(p)
				if detected == "" {
					return errMsg{err: fmt.Errorf("could not auto-detect serial port")}
				}
				p.SERIAL.PORT = detected
			}
			bridge, err := serialpkg.Open(p.SERIAL, p.CHANNELS)
			if err != nil {
				return errMsg{err: err}
			}
			if _, _, _, err := bridge.GetVersion(); err != nil {
				_ = bridge.Close()
				return errMsg{err: fmt.Errorf("bridge version probe: %w", err)}
			}
			sess.bridge = bridge
			sess.port = p.SERIAL.PORT
			sess.src = acquire.NewBridgeSource(bridge, p.FREQ, p.NSAMPLES)
		}
		if p.LOGFILE != "" {
			logger, err := acquire.NewLogger(p)
			if err != nil {
				sess.close()
				return errMsg{err: err}
			}
			sess.logger = logger
		}
		return startedMsg{runID: runID, sess: sess}
	}
}

func runAcquisition(ctx context.Context, sess *session, batches chan<- acquire.Batch, done chan<- error) {
	cfg := acquire.Config{
		Multipliers: sess.p.Multipliers(),
		ThermCh:     sess.p.THERMCH,
		Curve:       thermo.Name(sess.p.CALIB),
	}
	err := acquire.Run(ctx, sess.src, sess.p, func() acquire.Config { return cfg }, func(b acquire.Batch) {
		if sess.logger != nil {
			_ = sess.logger.WriteBatch(b)
		}
		select {
		case batches <- b:
		case <-ctx.Done():
		}
	})
	close(batches)
	done <- err
}

func (m model) waitBatch(runID int) tea.Cmd {
	ch := m.batches
	return func() tea.Msg {
		b, ok := <-ch
		if !ok {
			return nil
		}
		return batchMsg{runID: runID, b: b}
	}
}

func (m model) waitDone(runID int) tea.Cmd {
	ch := m.runErr
	return func() tea.Msg {
		return runDoneMsg{runID: runID, err: <-ch}
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CryoDAQ") + "\n")
	b.WriteString(helpStyle.Render("Ctrl+C to quit.") + "\n\n")
	if m.infoLine != "" {
		b.WriteString(okStyle.Render(m.infoLine) + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(errStyle.Render("Error: "+m.lastErr.Error()) + "\n")
	}
	b.WriteString("\n")

	switch m.scr {
	case screenEntry:
		b.WriteString(m.viewEntry())
	case screenLive:
		b.WriteString(m.viewLive())
	}
	return b.String()
}

func (m model) viewEntry() string {
	var b strings.Builder
	b.WriteString("Config JSON:\n")
	b.WriteString(m.configInput.View() + "\n\n")
	simState := "off"
	if m.sim {
		simState = "on"
	}
	b.WriteString(fmt.Sprintf("Simulated source: %s\n\n", simState))
	b.WriteString(helpStyle.Render("Enter a config path then press Enter to start. Press s to toggle the simulated source.") + "\n")
	return b.String()
}

func (m model) viewLive() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Live readout") + "\n\n")
	if m.sess == nil {
		b.WriteString("Starting...\n")
		return b.String()
	}
	if m.lastRow == nil {
		b.WriteString("Waiting for first batch...\n")
	} else {
		b.WriteString(fmt.Sprintf("Last sample %s  (batch %d, running %s)\n\n",
			time.Unix(int64(m.lastRow[0]), 0).Format("15:04:05"),
			m.nBatches, time.Since(m.startedAt).Round(time.Second)))
		for i, label := range m.sess.labels {
			if i+1 >= len(m.lastRow) {
				break
			}
			line := fmt.Sprintf("  %-12s %12.5g", label, m.lastRow[i+1])
			if i == m.sess.p.THERMCH {
				line = tempStyle.Render(line + " K")
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n")
	if m.sess.p.LOGFILE != "" {
		b.WriteString(helpStyle.Render("Logging to "+m.sess.p.LOGFILE) + "\n")
	}
	b.WriteString(helpStyle.Render("Press q to stop and go back.") + "\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
