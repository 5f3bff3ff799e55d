package serial

import (
	"fmt"
	"strings"
	"time"

	goserial "github.com/tarm/serial"
)

// getCommand frames a verb for the bridge: '#' start byte, verb, CR.
func getCommand(verb string) []byte {
	return []byte("#" + verb + "\r")
}

// sendCommand writes a framed command and reads the reply until CR or the
// deadline elapses. The port's own ReadTimeout paces the poll loop.
func sendCommand(port *goserial.Port, cmd []byte, timeoutMs int) (string, error) {
	if err := port.Flush(); err != nil {
		return "", err
	}
	if _, err := port.Write(cmd); err != nil {
		return "", err
	}
	var sb strings.Builder
	buf := make([]byte, 256)
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for time.Now().Before(deadline) {
		n, err := port.Read(buf)
		if err != nil {
			// tarm/serial reports timeouts as io.EOF on some platforms;
			// keep polling until the deadline.
			continue
		}
		if n > 0 {
			sb.Write(buf[:n])
			if strings.ContainsRune(sb.String(), '\r') {
				return sb.String(), nil
			}
		}
	}
	if sb.Len() > 0 {
		return sb.String(), nil
	}
	return "", fmt.Errorf("timeout after %dms", timeoutMs)
}
