// Package dataservice is the single data access layer behind every console
// view. It has two implementations selected by config: a demo service with
// deterministic in-memory fixtures, and a live service reading the Omnia
// custom resources from a cluster.
package dataservice

import (
	"context"
	"errors"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/session"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err means the resource does not exist,
// regardless of which implementation produced it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, session.ErrSessionNotFound) ||
		apierrors.IsNotFound(err)
}

// Workspace is a tenant namespace visible in the console.
type Workspace struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SecretInfo describes a secret without its values. The console only ever
// surfaces secret names and key names.
type SecretInfo struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Keys      []string  `json:"keys"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service is the console's view of the platform. Reads return the last
// observed state; there is no client-side reconciliation.
type Service interface {
	// Workspaces lists the namespaces carrying the workspace label.
	Workspaces(ctx context.Context) ([]Workspace, error)

	AgentRuntimes(ctx context.Context, workspace string) ([]v1alpha1.AgentRuntime, error)
	AgentRuntime(ctx context.Context, workspace, name string) (*v1alpha1.AgentRuntime, error)

	PromptPacks(ctx context.Context, workspace string) ([]v1alpha1.PromptPack, error)
	PromptPack(ctx context.Context, workspace, name string) (*v1alpha1.PromptPack, error)

	ToolRegistries(ctx context.Context, workspace string) ([]v1alpha1.ToolRegistry, error)
	ToolRegistry(ctx context.Context, workspace, name string) (*v1alpha1.ToolRegistry, error)

	// Provider reads a provider from an explicit namespace; SharedProviders
	// lists the platform-wide providers from the shared namespace.
	Provider(ctx context.Context, namespace, name string) (*v1alpha1.Provider, error)
	SharedProviders(ctx context.Context) ([]v1alpha1.Provider, error)

	// Secrets lists secret metadata in a workspace. Values are never read.
	Secrets(ctx context.Context, workspace string) ([]SecretInfo, error)

	ArenaSources(ctx context.Context, workspace string) ([]v1alpha1.ArenaSource, error)
	ArenaSource(ctx context.Context, workspace, name string) (*v1alpha1.ArenaSource, error)
	CreateArenaSource(ctx context.Context, workspace string, source *v1alpha1.ArenaSource) error
	DeleteArenaSource(ctx context.Context, workspace, name string) error

	ArenaJobs(ctx context.Context, workspace string) ([]v1alpha1.ArenaJob, error)
	ArenaJob(ctx context.Context, workspace, name string) (*v1alpha1.ArenaJob, error)
	CreateArenaJob(ctx context.Context, workspace string, job *v1alpha1.ArenaJob) error
	// CancelArenaJob suspends a pending or running job, which the arena
	// controller treats as cancellation. Terminal jobs are left alone.
	CancelArenaJob(ctx context.Context, workspace, name string) error

	ArenaProjects(ctx context.Context, workspace string) ([]v1alpha1.ArenaProject, error)
	ArenaProject(ctx context.Context, workspace, name string) (*v1alpha1.ArenaProject, error)

	Sessions(ctx context.Context, workspace, runtime string, limit int) ([]session.Session, error)
	Session(ctx context.Context, workspace, id string) (*session.Session, error)
	Transcript(ctx context.Context, workspace, sessionID string, since time.Time) ([]session.TranscriptEvent, error)

	// Usage reports token consumption per runtime and provider over the
	// window, the input to cost reports.
	Usage(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error)
}

// SessionSource is the slice of the session store the live service needs.
// *session.Store satisfies it.
type SessionSource interface {
	ListSessions(ctx context.Context, workspace, runtime string, limit int) ([]session.Session, error)
	GetSession(ctx context.Context, workspace, id string) (*session.Session, error)
	GetTranscript(ctx context.Context, workspace, sessionID string, since time.Time) ([]session.TranscriptEvent, error)
	UsageSince(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error)
}
