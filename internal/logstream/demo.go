package logstream

import (
	"context"
	"fmt"
	"sync"
)

// DemoSource produces deterministic synthetic log lines for demo mode. Each
// poll returns the last few lines plus one new one, exercising the same
// overlap path real pod logs take.
func DemoSource(runtime string) Source {
	var mu sync.Mutex
	var lines []string
	tick := 0

	return func(ctx context.Context) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()

		tick++
		switch tick % 5 {
		case 0:
			lines = append(lines, fmt.Sprintf("level=info msg=\"session completed\" runtime=%s tick=%d", runtime, tick))
		case 3:
			lines = append(lines, fmt.Sprintf("level=info msg=\"tool call ok\" runtime=%s tick=%d", runtime, tick))
		default:
			lines = append(lines, fmt.Sprintf("level=info msg=\"handled request\" runtime=%s tick=%d", runtime, tick))
		}

		// Tail of the buffer, like a tailLines pod log read.
		start := 0
		if len(lines) > 10 {
			start = len(lines) - 10
		}
		return append([]string(nil), lines[start:]...), nil
	}
}
