package dataservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/session"
)

// Demo serves deterministic fixtures so the console runs with no cluster,
// no Prometheus, and no database. The same fixture set is produced on every
// start; arena writes mutate only in-memory state.
type Demo struct {
	mu         sync.Mutex
	base       time.Time
	workspaces []Workspace
	runtimes   map[string][]v1alpha1.AgentRuntime
	packs      map[string][]v1alpha1.PromptPack
	registries map[string][]v1alpha1.ToolRegistry
	providers  map[string][]v1alpha1.Provider
	secrets    map[string][]SecretInfo
	sources    map[string][]v1alpha1.ArenaSource
	jobs       map[string][]v1alpha1.ArenaJob
	projects   map[string][]v1alpha1.ArenaProject
	sessions   map[string][]session.Session
	events     map[string][]session.TranscriptEvent

	sharedNamespace string
}

// NewDemo builds the fixture set.
func NewDemo(sharedNamespace string) *Demo {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	d := &Demo{
		base:            base,
		runtimes:        map[string][]v1alpha1.AgentRuntime{},
		packs:           map[string][]v1alpha1.PromptPack{},
		registries:      map[string][]v1alpha1.ToolRegistry{},
		providers:       map[string][]v1alpha1.Provider{},
		secrets:         map[string][]SecretInfo{},
		sources:         map[string][]v1alpha1.ArenaSource{},
		jobs:            map[string][]v1alpha1.ArenaJob{},
		projects:        map[string][]v1alpha1.ArenaProject{},
		sessions:        map[string][]session.Session{},
		events:          map[string][]session.TranscriptEvent{},
		sharedNamespace: sharedNamespace,
	}
	d.seed()
	return d
}

func int32p(v int32) *int32 { return &v }
func strp(v string) *string { return &v }

func modep(v v1alpha1.HandlerMode) *v1alpha1.HandlerMode { return &v }

func (d *Demo) seed() {
	d.workspaces = []Workspace{
		{Name: "acme-support", DisplayName: "Acme Support", CreatedAt: d.base.AddDate(0, -3, 0)},
		{Name: "acme-research", DisplayName: "Acme Research", CreatedAt: d.base.AddDate(0, -1, 0)},
	}

	objectMeta := func(ns, name string, age time.Duration) metav1.ObjectMeta {
		return metav1.ObjectMeta{
			Namespace:         ns,
			Name:              name,
			CreationTimestamp: metav1.NewTime(d.base.Add(-age)),
		}
	}

	d.runtimes["acme-support"] = []v1alpha1.AgentRuntime{
		{
			ObjectMeta: objectMeta("acme-support", "support-bot", 40*24*time.Hour),
			Spec: v1alpha1.AgentRuntimeSpec{
				Framework:     "promptkit",
				PromptPackRef: v1alpha1.PromptPackRef{Name: "support-prompts", Track: strp("stable")},
				Facade:        v1alpha1.FacadeConfig{Type: v1alpha1.FacadeTypeWebSocket, Port: int32p(8080), Handler: modep(v1alpha1.HandlerModeRuntime)},
				ToolRegistryRef: &v1alpha1.ToolRegistryRef{Name: "support-tools"},
				ProviderRef:   &v1alpha1.ProviderRef{Name: "claude-sonnet", Namespace: strp(d.sharedNamespace)},
				Session:       &v1alpha1.SessionConfig{Type: v1alpha1.SessionStoreTypePostgres, TTL: strp("720h")},
				Replicas:      int32p(3),
			},
			Status: v1alpha1.AgentRuntimeStatus{
				Phase:         v1alpha1.AgentRuntimePhaseRunning,
				Replicas:      &v1alpha1.ReplicaStatus{Desired: 3, Ready: 3, Available: 3},
				ActiveVersion: strp("1.4.2"),
			},
		},
		{
			ObjectMeta: objectMeta("acme-support", "triage", 12*24*time.Hour),
			Spec: v1alpha1.AgentRuntimeSpec{
				Framework:     "promptkit",
				PromptPackRef: v1alpha1.PromptPackRef{Name: "triage-prompts", Version: strp("0.9.0")},
				Facade:        v1alpha1.FacadeConfig{Type: v1alpha1.FacadeTypeGRPC, Handler: modep(v1alpha1.HandlerModeRuntime)},
				ProviderRef:   &v1alpha1.ProviderRef{Name: "gpt-mini", Namespace: strp(d.sharedNamespace)},
				Replicas:      int32p(1),
			},
			Status: v1alpha1.AgentRuntimeStatus{
				Phase:         v1alpha1.AgentRuntimePhaseRunning,
				Replicas:      &v1alpha1.ReplicaStatus{Desired: 1, Ready: 1, Available: 1},
				ActiveVersion: strp("0.9.0"),
			},
		},
		{
			ObjectMeta: objectMeta("acme-support", "canary-bot", 2*time.Hour),
			Spec: v1alpha1.AgentRuntimeSpec{
				Framework:     "promptkit",
				PromptPackRef: v1alpha1.PromptPackRef{Name: "support-prompts", Track: strp("canary")},
				Facade:        v1alpha1.FacadeConfig{Type: v1alpha1.FacadeTypeWebSocket, Handler: modep(v1alpha1.HandlerModeDemo)},
				Replicas:      int32p(1),
			},
			Status: v1alpha1.AgentRuntimeStatus{
				Phase:    v1alpha1.AgentRuntimePhasePending,
				Replicas: &v1alpha1.ReplicaStatus{Desired: 1, Ready: 0, Available: 0},
			},
		},
	}
	d.runtimes["acme-research"] = []v1alpha1.AgentRuntime{
		{
			ObjectMeta: objectMeta("acme-research", "paper-summarizer", 20*24*time.Hour),
			Spec: v1alpha1.AgentRuntimeSpec{
				Framework:     "promptkit",
				PromptPackRef: v1alpha1.PromptPackRef{Name: "research-prompts", Track: strp("stable")},
				Facade:        v1alpha1.FacadeConfig{Type: v1alpha1.FacadeTypeGRPC, Handler: modep(v1alpha1.HandlerModeRuntime)},
				ProviderRef:   &v1alpha1.ProviderRef{Name: "gemini-flash", Namespace: strp(d.sharedNamespace)},
				Replicas:      int32p(2),
			},
			Status: v1alpha1.AgentRuntimeStatus{
				Phase:         v1alpha1.AgentRuntimePhaseRunning,
				Replicas:      &v1alpha1.ReplicaStatus{Desired: 2, Ready: 2, Available: 2},
				ActiveVersion: strp("2.1.0"),
			},
		},
	}

	d.packs["acme-support"] = []v1alpha1.PromptPack{
		{
			ObjectMeta: objectMeta("acme-support", "support-prompts", 40*24*time.Hour),
			Spec: v1alpha1.PromptPackSpec{
				Description: "Customer support conversation prompts",
				Version:     "1.4.2",
				Prompts: []v1alpha1.PromptDefinition{
					{Name: "greeting", Role: "system", Template: "You are a helpful support agent for {{product}}."},
					{Name: "escalation", Role: "system", Template: "Summarize the issue for a human agent."},
				},
				Tracks: []v1alpha1.ReleaseTrack{
					{Name: "stable", Version: "1.4.2"},
					{Name: "canary", Version: "1.5.0-rc.1"},
				},
			},
			Status: v1alpha1.PromptPackStatus{
				Phase:             v1alpha1.PromptPackPhasePublished,
				PublishedVersions: []string{"1.3.0", "1.4.0", "1.4.2", "1.5.0-rc.1"},
			},
		},
		{
			ObjectMeta: objectMeta("acme-support", "triage-prompts", 12*24*time.Hour),
			Spec: v1alpha1.PromptPackSpec{
				Description: "Ticket triage classification prompts",
				Version:     "0.9.0",
				Prompts: []v1alpha1.PromptDefinition{
					{Name: "classify", Role: "system", Template: "Classify the ticket into one of: {{categories}}."},
				},
			},
			Status: v1alpha1.PromptPackStatus{
				Phase:             v1alpha1.PromptPackPhasePublished,
				PublishedVersions: []string{"0.9.0"},
			},
		},
	}
	d.packs["acme-research"] = []v1alpha1.PromptPack{
		{
			ObjectMeta: objectMeta("acme-research", "research-prompts", 20*24*time.Hour),
			Spec: v1alpha1.PromptPackSpec{
				Description: "Paper summarization prompts",
				Version:     "2.1.0",
				Prompts: []v1alpha1.PromptDefinition{
					{Name: "summarize", Role: "system", Template: "Summarize the paper in {{length}} sentences."},
				},
				Tracks: []v1alpha1.ReleaseTrack{{Name: "stable", Version: "2.1.0"}},
			},
			Status: v1alpha1.PromptPackStatus{
				Phase:             v1alpha1.PromptPackPhasePublished,
				PublishedVersions: []string{"2.0.0", "2.1.0"},
			},
		},
	}

	timeout := metav1.Duration{Duration: 10 * time.Second}
	d.registries["acme-support"] = []v1alpha1.ToolRegistry{
		{
			ObjectMeta: objectMeta("acme-support", "support-tools", 40*24*time.Hour),
			Spec: v1alpha1.ToolRegistrySpec{
				Description: "Ticketing and knowledge base tools",
				Tools: []v1alpha1.ToolDefinition{
					{Name: "lookup_ticket", Description: "Fetch a ticket by ID", Endpoint: "http://ticketing.acme-support.svc/lookup", Timeout: &timeout},
					{Name: "search_kb", Description: "Search the knowledge base", Endpoint: "http://kb.acme-support.svc/search"},
				},
			},
			Status: v1alpha1.ToolRegistryStatus{Phase: v1alpha1.ToolRegistryPhaseReady, ToolCount: 2},
		},
	}

	d.providers[d.sharedNamespace] = []v1alpha1.Provider{
		{
			ObjectMeta: objectMeta(d.sharedNamespace, "claude-sonnet", 60*24*time.Hour),
			Spec: v1alpha1.ProviderSpec{
				Type:      v1alpha1.ProviderTypeClaude,
				Model:     "claude-sonnet-4-5",
				SecretRef: "anthropic-api-key",
				Defaults:  &v1alpha1.ProviderDefaults{Temperature: "0.7", MaxTokens: int32p(8192)},
				Pricing:   &v1alpha1.ProviderPricing{InputCostPer1K: "0.003", OutputCostPer1K: "0.015", CachedCostPer1K: "0.0003"},
			},
			Status: v1alpha1.ProviderStatus{Ready: true},
		},
		{
			ObjectMeta: objectMeta(d.sharedNamespace, "gpt-mini", 60*24*time.Hour),
			Spec: v1alpha1.ProviderSpec{
				Type:      v1alpha1.ProviderTypeOpenAI,
				Model:     "gpt-4o-mini",
				SecretRef: "openai-api-key",
				Pricing:   &v1alpha1.ProviderPricing{InputCostPer1K: "0.00015", OutputCostPer1K: "0.0006"},
			},
			Status: v1alpha1.ProviderStatus{Ready: true},
		},
		{
			ObjectMeta: objectMeta(d.sharedNamespace, "gemini-flash", 30*24*time.Hour),
			Spec: v1alpha1.ProviderSpec{
				Type:      v1alpha1.ProviderTypeGemini,
				Model:     "gemini-2.0-flash",
				SecretRef: "gemini-api-key",
				Pricing:   &v1alpha1.ProviderPricing{InputCostPer1K: "0.0001", OutputCostPer1K: "0.0004"},
			},
			Status: v1alpha1.ProviderStatus{Ready: false, Message: "secret gemini-api-key not found"},
		},
	}

	d.secrets["acme-support"] = []SecretInfo{
		{Name: "anthropic-api-key", Type: "Opaque", Keys: []string{"api-key"}, CreatedAt: d.base.AddDate(0, -2, 0)},
		{Name: "ticketing-credentials", Type: "Opaque", Keys: []string{"password", "username"}, CreatedAt: d.base.AddDate(0, -2, 0)},
	}
	d.secrets["acme-research"] = []SecretInfo{
		{Name: "gemini-api-key", Type: "Opaque", Keys: []string{"api-key"}, CreatedAt: d.base.AddDate(0, -1, 0)},
	}

	d.projects["acme-support"] = []v1alpha1.ArenaProject{
		{
			ObjectMeta: objectMeta("acme-support", "deflection-quality", 30*24*time.Hour),
			Spec:       v1alpha1.ArenaProjectSpec{DisplayName: "Deflection Quality", Description: "Measures answer quality on historical tickets"},
			Status:     v1alpha1.ArenaProjectStatus{SourceCount: 2, JobCount: 3},
		},
	}
	d.sources["acme-support"] = []v1alpha1.ArenaSource{
		{
			ObjectMeta: objectMeta("acme-support", "tickets-2025-q4", 30*24*time.Hour),
			Spec: v1alpha1.ArenaSourceSpec{
				Project: "deflection-quality",
				Type:    v1alpha1.ArenaSourceTypeDataset,
				URI:     "s3://acme-arena/tickets-2025-q4.jsonl",
				Format:  "jsonl",
			},
			Status: v1alpha1.ArenaSourceStatus{Phase: v1alpha1.ArenaSourcePhaseReady, Records: 12840},
		},
		{
			ObjectMeta: objectMeta("acme-support", "live-sample", 7*24*time.Hour),
			Spec: v1alpha1.ArenaSourceSpec{
				Project:    "deflection-quality",
				Type:       v1alpha1.ArenaSourceTypeLive,
				SampleRate: "0.05",
			},
			Status: v1alpha1.ArenaSourceStatus{Phase: v1alpha1.ArenaSourcePhaseReady, Records: 412},
		},
	}
	started := metav1.NewTime(d.base.Add(-3 * time.Hour))
	completed := metav1.NewTime(d.base.Add(-2 * time.Hour))
	d.jobs["acme-support"] = []v1alpha1.ArenaJob{
		{
			ObjectMeta: objectMeta("acme-support", "eval-142", 3*time.Hour),
			Spec: v1alpha1.ArenaJobSpec{
				Project:    "deflection-quality",
				SourceRef:  "tickets-2025-q4",
				RuntimeRef: "support-bot",
			},
			Status: v1alpha1.ArenaJobStatus{
				Phase:       v1alpha1.ArenaJobPhaseSucceeded,
				Progress:    100,
				Score:       "0.87",
				StartedAt:   &started,
				CompletedAt: &completed,
			},
		},
		{
			ObjectMeta: objectMeta("acme-support", "eval-143", 30*time.Minute),
			Spec: v1alpha1.ArenaJobSpec{
				Project:    "deflection-quality",
				SourceRef:  "live-sample",
				RuntimeRef: "canary-bot",
			},
			Status: v1alpha1.ArenaJobStatus{
				Phase:     v1alpha1.ArenaJobPhaseRunning,
				Progress:  46,
				StartedAt: &started,
			},
		},
	}

	d.seedSessions()
}

func (d *Demo) seedSessions() {
	makeSession := func(id, ws, runtime, provider, status string, events int, age time.Duration) session.Session {
		return session.Session{
			ID:          id,
			Workspace:   ws,
			Runtime:     runtime,
			Provider:    provider,
			Status:      status,
			EventCount:  events,
			StartedAt:   d.base.Add(-age),
			LastEventAt: d.base.Add(-age + time.Duration(events)*30*time.Second),
		}
	}

	d.sessions["acme-support"] = []session.Session{
		makeSession("sess-0001", "acme-support", "support-bot", "claude-sonnet", "active", 14, time.Hour),
		makeSession("sess-0002", "acme-support", "support-bot", "claude-sonnet", "ended", 6, 5*time.Hour),
		makeSession("sess-0003", "acme-support", "triage", "gpt-mini", "ended", 3, 8*time.Hour),
	}
	d.sessions["acme-research"] = []session.Session{
		makeSession("sess-1001", "acme-research", "paper-summarizer", "gemini-flash", "ended", 4, 26*time.Hour),
	}

	transcript := func(sessionID string, turns ...[2]string) []session.TranscriptEvent {
		events := make([]session.TranscriptEvent, 0, len(turns))
		for i, turn := range turns {
			events = append(events, session.TranscriptEvent{
				ID:        fmt.Sprintf("%s-ev-%d", sessionID, i+1),
				SessionID: sessionID,
				Role:      turn[0],
				Content:   turn[1],
				Timestamp: d.base.Add(-time.Hour + time.Duration(i)*30*time.Second),
			})
		}
		return events
	}

	d.events["sess-0001"] = transcript("sess-0001",
		[2]string{"user", "My order #8812 never arrived."},
		[2]string{"assistant", "I'm sorry to hear that. Let me look up order #8812."},
		[2]string{"tool", "lookup_ticket(#8812): shipped 2026-01-10, carrier lost"},
		[2]string{"assistant", "The carrier reported the package lost. I can issue a replacement or a refund."},
	)
	d.events["sess-0002"] = transcript("sess-0002",
		[2]string{"user", "How do I reset my password?"},
		[2]string{"assistant", "Use the reset link on the sign-in page. It expires after one hour."},
	)
}

func (d *Demo) Workspaces(ctx context.Context) ([]Workspace, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Workspace(nil), d.workspaces...), nil
}

// knownWorkspace guards list calls so unknown workspaces 404 instead of
// returning empty fixture lists.
func (d *Demo) knownWorkspace(workspace string) error {
	for _, ws := range d.workspaces {
		if ws.Name == workspace {
			return nil
		}
	}
	return fmt.Errorf("workspace %q: %w", workspace, ErrNotFound)
}

func (d *Demo) AgentRuntimes(ctx context.Context, workspace string) ([]v1alpha1.AgentRuntime, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.AgentRuntime(nil), d.runtimes[workspace]...), nil
}

func (d *Demo) AgentRuntime(ctx context.Context, workspace, name string) (*v1alpha1.AgentRuntime, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.runtimes[workspace] {
		if d.runtimes[workspace][i].Name == name {
			return d.runtimes[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("agent runtime %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) PromptPacks(ctx context.Context, workspace string) ([]v1alpha1.PromptPack, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.PromptPack(nil), d.packs[workspace]...), nil
}

func (d *Demo) PromptPack(ctx context.Context, workspace, name string) (*v1alpha1.PromptPack, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.packs[workspace] {
		if d.packs[workspace][i].Name == name {
			return d.packs[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("prompt pack %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) ToolRegistries(ctx context.Context, workspace string) ([]v1alpha1.ToolRegistry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.ToolRegistry(nil), d.registries[workspace]...), nil
}

func (d *Demo) ToolRegistry(ctx context.Context, workspace, name string) (*v1alpha1.ToolRegistry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.registries[workspace] {
		if d.registries[workspace][i].Name == name {
			return d.registries[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("tool registry %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) Provider(ctx context.Context, namespace, name string) (*v1alpha1.Provider, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.providers[namespace] {
		if d.providers[namespace][i].Name == name {
			return d.providers[namespace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("provider %s/%s: %w", namespace, name, ErrNotFound)
}

func (d *Demo) SharedProviders(ctx context.Context) ([]v1alpha1.Provider, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]v1alpha1.Provider(nil), d.providers[d.sharedNamespace]...), nil
}

func (d *Demo) Secrets(ctx context.Context, workspace string) ([]SecretInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]SecretInfo(nil), d.secrets[workspace]...), nil
}

func (d *Demo) ArenaSources(ctx context.Context, workspace string) ([]v1alpha1.ArenaSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.ArenaSource(nil), d.sources[workspace]...), nil
}

func (d *Demo) ArenaSource(ctx context.Context, workspace, name string) (*v1alpha1.ArenaSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.sources[workspace] {
		if d.sources[workspace][i].Name == name {
			return d.sources[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("arena source %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) CreateArenaSource(ctx context.Context, workspace string, source *v1alpha1.ArenaSource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return err
	}
	for i := range d.sources[workspace] {
		if d.sources[workspace][i].Name == source.Name {
			return fmt.Errorf("arena source %s/%s already exists", workspace, source.Name)
		}
	}
	source.Namespace = workspace
	source.CreationTimestamp = metav1.Now()
	if source.Spec.Format == "" {
		source.Spec.Format = "jsonl"
	}
	source.Status.Phase = v1alpha1.ArenaSourcePhasePending
	d.sources[workspace] = append(d.sources[workspace], *source.DeepCopy())
	return nil
}

func (d *Demo) DeleteArenaSource(ctx context.Context, workspace, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.sources[workspace] {
		if d.sources[workspace][i].Name == name {
			d.sources[workspace] = append(d.sources[workspace][:i], d.sources[workspace][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("arena source %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) ArenaJobs(ctx context.Context, workspace string) ([]v1alpha1.ArenaJob, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.ArenaJob(nil), d.jobs[workspace]...), nil
}

func (d *Demo) ArenaJob(ctx context.Context, workspace, name string) (*v1alpha1.ArenaJob, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.jobs[workspace] {
		if d.jobs[workspace][i].Name == name {
			return d.jobs[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("arena job %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) CreateArenaJob(ctx context.Context, workspace string, job *v1alpha1.ArenaJob) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return err
	}
	for i := range d.jobs[workspace] {
		if d.jobs[workspace][i].Name == job.Name {
			return fmt.Errorf("arena job %s/%s already exists", workspace, job.Name)
		}
	}
	job.Namespace = workspace
	job.CreationTimestamp = metav1.Now()
	job.Status.Phase = v1alpha1.ArenaJobPhasePending
	d.jobs[workspace] = append(d.jobs[workspace], *job.DeepCopy())
	return nil
}

func (d *Demo) CancelArenaJob(ctx context.Context, workspace, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.jobs[workspace] {
		job := &d.jobs[workspace][i]
		if job.Name != name {
			continue
		}
		switch job.Status.Phase {
		case v1alpha1.ArenaJobPhaseSucceeded, v1alpha1.ArenaJobPhaseFailed, v1alpha1.ArenaJobPhaseCanceled:
			return nil
		}
		job.Spec.Suspend = true
		job.Status.Phase = v1alpha1.ArenaJobPhaseCanceled
		now := metav1.Now()
		job.Status.CompletedAt = &now
		return nil
	}
	return fmt.Errorf("arena job %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) ArenaProjects(ctx context.Context, workspace string) ([]v1alpha1.ArenaProject, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	return append([]v1alpha1.ArenaProject(nil), d.projects[workspace]...), nil
}

func (d *Demo) ArenaProject(ctx context.Context, workspace, name string) (*v1alpha1.ArenaProject, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.projects[workspace] {
		if d.projects[workspace][i].Name == name {
			return d.projects[workspace][i].DeepCopy(), nil
		}
	}
	return nil, fmt.Errorf("arena project %s/%s: %w", workspace, name, ErrNotFound)
}

func (d *Demo) Sessions(ctx context.Context, workspace, runtime string, limit int) ([]session.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	var out []session.Session
	for _, sess := range d.sessions[workspace] {
		if runtime != "" && sess.Runtime != runtime {
			continue
		}
		out = append(out, sess)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (d *Demo) Session(ctx context.Context, workspace, id string) (*session.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, sess := range d.sessions[workspace] {
		if sess.ID == id {
			out := sess
			return &out, nil
		}
	}
	return nil, fmt.Errorf("session %s/%s: %w", workspace, id, ErrNotFound)
}

func (d *Demo) Transcript(ctx context.Context, workspace, sessionID string, since time.Time) ([]session.TranscriptEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	found := false
	for _, sess := range d.sessions[workspace] {
		if sess.ID == sessionID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("session %s/%s: %w", workspace, sessionID, ErrNotFound)
	}

	var out []session.TranscriptEvent
	for _, event := range d.events[sessionID] {
		if !since.IsZero() && !event.Timestamp.After(since) {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (d *Demo) Usage(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.knownWorkspace(workspace); err != nil {
		return nil, err
	}

	// Scale fixed hourly rates by the window so the cost view responds to
	// the window selector.
	hours := window.Hours()
	if hours <= 0 {
		hours = 1
	}

	switch workspace {
	case "acme-support":
		return []cost.Usage{
			{Runtime: "support-bot", Provider: "claude-sonnet", InputTokens: 42000 * hours, OutputTokens: 18500 * hours, CachedTokens: 9000 * hours},
			{Runtime: "triage", Provider: "gpt-mini", InputTokens: 15000 * hours, OutputTokens: 4200 * hours},
		}, nil
	case "acme-research":
		return []cost.Usage{
			{Runtime: "paper-summarizer", Provider: "gemini-flash", InputTokens: 98000 * hours, OutputTokens: 12000 * hours},
		}, nil
	}
	return nil, nil
}
