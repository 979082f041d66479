package logstream

import (
	"context"
	"fmt"
	"io"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"
)

// PodLogSource fetches the tail of a pod's container logs through the
// Kubernetes API. Each fetch returns a window of recent lines; the poller
// handles the overlap between consecutive windows.
func PodLogSource(clientset kubernetes.Interface, namespace, pod, container string, tailLines int64) Source {
	return func(ctx context.Context) ([]string, error) {
		opts := &corev1.PodLogOptions{
			Container: container,
			TailLines: &tailLines,
		}
		req := clientset.CoreV1().Pods(namespace).GetLogs(pod, opts)
		stream, err := req.Stream(ctx)
		if err != nil {
			return nil, fmt.Errorf("streaming logs for %s/%s: %w", namespace, pod, err)
		}
		defer stream.Close()

		raw, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("reading logs for %s/%s: %w", namespace, pod, err)
		}

		lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
		if len(lines) == 1 && lines[0] == "" {
			return nil, nil
		}
		return lines, nil
	}
}
