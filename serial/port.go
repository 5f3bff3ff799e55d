package serial

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/koppilab/cryodaq-go/models"
	goserial "github.com/tarm/serial"
)

// AutoDetectPort scans common ports for one answering the version probe.
func AutoDetectPort(p *models.PARAMETERS) string {
	baud := p.SERIAL.BAUDRATE
	if runtime.GOOS == "windows" {
		for i := 1; i <= 64; i++ {
			portName := fmt.Sprintf("COM%d", i)
			if TestPort(portName, baud) {
				return portName
			}
		}
		return ""
	}

	candidates := make([]string, 0, 32)
	for _, pat := range []string{"/dev/ttyUSB*", "/dev/ttyACM*", "/dev/ttyS*", "/dev/cu.*"} {
		matches, _ := filepath.Glob(pat)
		for _, m := range matches {
			if _, err := os.Stat(m); err == nil {
				candidates = append(candidates, m)
			}
		}
	}
	for _, portName := range candidates {
		if TestPort(portName, baud) {
			return portName
		}
	}
	return ""
}

// TestPort tries to open the port and issue a version command.
func TestPort(name string, baud int) bool {
	cfg := &goserial.Config{Name: name, Baud: baud, Parity: goserial.ParityNone, Size: 8, StopBits: goserial.Stop1, ReadTimeout: time.Millisecond * 300}
	sp, err := goserial.OpenPort(cfg)
	if err != nil {
		return false
	}
	defer func() { _ = sp.Close() }()

	resp, err := sendCommand(sp, getCommand("V"), 200)
	if err != nil {
		return false
	}
	return strings.Contains(resp, "Version")
}
