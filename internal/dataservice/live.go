package dataservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/client"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/session"
)

// ErrSessionStoreUnavailable is returned by session reads when the console
// runs live without a session database configured.
var ErrSessionStoreUnavailable = errors.New("session store not configured")

// Live reads the platform's custom resources from the cluster. Listing is
// always namespace-scoped to the requested workspace.
type Live struct {
	client          client.Client
	kube            kubernetes.Interface
	sessions        SessionSource
	workspaceLabel  string
	sharedNamespace string
}

// NewLive builds a live service. sessions may be nil when no session
// database is configured; session reads then fail with
// ErrSessionStoreUnavailable.
func NewLive(c client.Client, kube kubernetes.Interface, sessions SessionSource, workspaceLabel, sharedNamespace string) *Live {
	return &Live{
		client:          c,
		kube:            kube,
		sessions:        sessions,
		workspaceLabel:  workspaceLabel,
		sharedNamespace: sharedNamespace,
	}
}

func (l *Live) Workspaces(ctx context.Context) ([]Workspace, error) {
	var namespaces corev1.NamespaceList
	if err := l.client.List(ctx, &namespaces, client.HasLabels{l.workspaceLabel}); err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	workspaces := make([]Workspace, 0, len(namespaces.Items))
	for _, ns := range namespaces.Items {
		workspaces = append(workspaces, Workspace{
			Name:        ns.Name,
			DisplayName: ns.Labels[l.workspaceLabel],
			CreatedAt:   ns.CreationTimestamp.Time,
		})
	}
	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i].Name < workspaces[j].Name })
	return workspaces, nil
}

func (l *Live) AgentRuntimes(ctx context.Context, workspace string) ([]v1alpha1.AgentRuntime, error) {
	var list v1alpha1.AgentRuntimeList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing agent runtimes: %w", err)
	}
	return list.Items, nil
}

func (l *Live) AgentRuntime(ctx context.Context, workspace, name string) (*v1alpha1.AgentRuntime, error) {
	runtime := &v1alpha1.AgentRuntime{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, runtime); err != nil {
		return nil, fmt.Errorf("getting agent runtime %s/%s: %w", workspace, name, err)
	}
	return runtime, nil
}

func (l *Live) PromptPacks(ctx context.Context, workspace string) ([]v1alpha1.PromptPack, error) {
	var list v1alpha1.PromptPackList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing prompt packs: %w", err)
	}
	return list.Items, nil
}

func (l *Live) PromptPack(ctx context.Context, workspace, name string) (*v1alpha1.PromptPack, error) {
	pack := &v1alpha1.PromptPack{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, pack); err != nil {
		return nil, fmt.Errorf("getting prompt pack %s/%s: %w", workspace, name, err)
	}
	return pack, nil
}

func (l *Live) ToolRegistries(ctx context.Context, workspace string) ([]v1alpha1.ToolRegistry, error) {
	var list v1alpha1.ToolRegistryList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing tool registries: %w", err)
	}
	return list.Items, nil
}

func (l *Live) ToolRegistry(ctx context.Context, workspace, name string) (*v1alpha1.ToolRegistry, error) {
	registry := &v1alpha1.ToolRegistry{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, registry); err != nil {
		return nil, fmt.Errorf("getting tool registry %s/%s: %w", workspace, name, err)
	}
	return registry, nil
}

func (l *Live) Provider(ctx context.Context, namespace, name string) (*v1alpha1.Provider, error) {
	provider := &v1alpha1.Provider{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, provider); err != nil {
		return nil, fmt.Errorf("getting provider %s/%s: %w", namespace, name, err)
	}
	return provider, nil
}

func (l *Live) SharedProviders(ctx context.Context) ([]v1alpha1.Provider, error) {
	var list v1alpha1.ProviderList
	if err := l.client.List(ctx, &list, client.InNamespace(l.sharedNamespace)); err != nil {
		return nil, fmt.Errorf("listing shared providers: %w", err)
	}
	return list.Items, nil
}

// Secrets lists secret metadata through the typed clientset. Only names,
// types, and key names leave this method.
func (l *Live) Secrets(ctx context.Context, workspace string) ([]SecretInfo, error) {
	list, err := l.kube.CoreV1().Secrets(workspace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	infos := make([]SecretInfo, 0, len(list.Items))
	for _, secret := range list.Items {
		keys := make([]string, 0, len(secret.Data))
		for k := range secret.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		infos = append(infos, SecretInfo{
			Name:      secret.Name,
			Type:      string(secret.Type),
			Keys:      keys,
			CreatedAt: secret.CreationTimestamp.Time,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (l *Live) ArenaSources(ctx context.Context, workspace string) ([]v1alpha1.ArenaSource, error) {
	var list v1alpha1.ArenaSourceList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing arena sources: %w", err)
	}
	return list.Items, nil
}

func (l *Live) ArenaSource(ctx context.Context, workspace, name string) (*v1alpha1.ArenaSource, error) {
	source := &v1alpha1.ArenaSource{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, source); err != nil {
		return nil, fmt.Errorf("getting arena source %s/%s: %w", workspace, name, err)
	}
	return source, nil
}

func (l *Live) CreateArenaSource(ctx context.Context, workspace string, source *v1alpha1.ArenaSource) error {
	source.Namespace = workspace
	if err := l.client.Create(ctx, source); err != nil {
		return fmt.Errorf("creating arena source: %w", err)
	}
	return nil
}

func (l *Live) DeleteArenaSource(ctx context.Context, workspace, name string) error {
	source := &v1alpha1.ArenaSource{}
	source.Namespace = workspace
	source.Name = name
	if err := l.client.Delete(ctx, source); err != nil {
		return fmt.Errorf("deleting arena source %s/%s: %w", workspace, name, err)
	}
	return nil
}

func (l *Live) ArenaJobs(ctx context.Context, workspace string) ([]v1alpha1.ArenaJob, error) {
	var list v1alpha1.ArenaJobList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing arena jobs: %w", err)
	}
	return list.Items, nil
}

func (l *Live) ArenaJob(ctx context.Context, workspace, name string) (*v1alpha1.ArenaJob, error) {
	job := &v1alpha1.ArenaJob{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, job); err != nil {
		return nil, fmt.Errorf("getting arena job %s/%s: %w", workspace, name, err)
	}
	return job, nil
}

func (l *Live) CreateArenaJob(ctx context.Context, workspace string, job *v1alpha1.ArenaJob) error {
	job.Namespace = workspace
	if err := l.client.Create(ctx, job); err != nil {
		return fmt.Errorf("creating arena job: %w", err)
	}
	return nil
}

// CancelArenaJob sets Suspend on the job, which the arena controller treats
// as a cancel for pending and running jobs. Terminal jobs are a no-op.
func (l *Live) CancelArenaJob(ctx context.Context, workspace, name string) error {
	job := &v1alpha1.ArenaJob{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, job); err != nil {
		return fmt.Errorf("getting arena job %s/%s: %w", workspace, name, err)
	}

	switch job.Status.Phase {
	case v1alpha1.ArenaJobPhaseSucceeded, v1alpha1.ArenaJobPhaseFailed, v1alpha1.ArenaJobPhaseCanceled:
		return nil
	}

	if job.Spec.Suspend {
		return nil
	}
	job.Spec.Suspend = true
	if err := l.client.Update(ctx, job); err != nil {
		return fmt.Errorf("cancelling arena job %s/%s: %w", workspace, name, err)
	}
	return nil
}

func (l *Live) ArenaProjects(ctx context.Context, workspace string) ([]v1alpha1.ArenaProject, error) {
	var list v1alpha1.ArenaProjectList
	if err := l.client.List(ctx, &list, client.InNamespace(workspace)); err != nil {
		return nil, fmt.Errorf("listing arena projects: %w", err)
	}
	return list.Items, nil
}

func (l *Live) ArenaProject(ctx context.Context, workspace, name string) (*v1alpha1.ArenaProject, error) {
	project := &v1alpha1.ArenaProject{}
	if err := l.client.Get(ctx, client.ObjectKey{Namespace: workspace, Name: name}, project); err != nil {
		return nil, fmt.Errorf("getting arena project %s/%s: %w", workspace, name, err)
	}
	return project, nil
}

func (l *Live) Sessions(ctx context.Context, workspace, runtime string, limit int) ([]session.Session, error) {
	if l.sessions == nil {
		return nil, ErrSessionStoreUnavailable
	}
	return l.sessions.ListSessions(ctx, workspace, runtime, limit)
}

func (l *Live) Session(ctx context.Context, workspace, id string) (*session.Session, error) {
	if l.sessions == nil {
		return nil, ErrSessionStoreUnavailable
	}
	return l.sessions.GetSession(ctx, workspace, id)
}

func (l *Live) Transcript(ctx context.Context, workspace, sessionID string, since time.Time) ([]session.TranscriptEvent, error) {
	if l.sessions == nil {
		return nil, ErrSessionStoreUnavailable
	}
	return l.sessions.GetTranscript(ctx, workspace, sessionID, since)
}

func (l *Live) Usage(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error) {
	if l.sessions == nil {
		return nil, ErrSessionStoreUnavailable
	}
	return l.sessions.UsageSince(ctx, workspace, window)
}
