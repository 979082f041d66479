package dataservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	k8sfake "k8s.io/client-go/kubernetes/fake"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/session"
)

const workspaceLabel = "omnia.altairalabs.ai/workspace"

func testScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		t.Fatalf("adding client-go scheme: %v", err)
	}
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		t.Fatalf("adding v1alpha1 scheme: %v", err)
	}
	return scheme
}

func namespace(name, label string) *corev1.Namespace {
	ns := &corev1.Namespace{}
	ns.Name = name
	if label != "" {
		ns.Labels = map[string]string{workspaceLabel: label}
	}
	return ns
}

func newTestLive(t *testing.T, objs ...runtime.Object) *Live {
	t.Helper()
	var clientObjs []client.Object
	for _, o := range objs {
		clientObjs = append(clientObjs, o.(client.Object))
	}
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(clientObjs...).Build()
	return NewLive(c, k8sfake.NewSimpleClientset(), nil, workspaceLabel, "omnia-shared")
}

func TestLiveWorkspacesFilterByLabel(t *testing.T) {
	l := newTestLive(t,
		namespace("team-a", "Team A"),
		namespace("team-b", "Team B"),
		namespace("kube-system", ""),
	)

	workspaces, err := l.Workspaces(context.Background())
	if err != nil {
		t.Fatalf("Workspaces: %v", err)
	}
	if len(workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(workspaces))
	}
	if workspaces[0].Name != "team-a" || workspaces[0].DisplayName != "Team A" {
		t.Errorf("unexpected first workspace: %+v", workspaces[0])
	}
}

func TestLiveAgentRuntimesAreNamespaceScoped(t *testing.T) {
	a := &v1alpha1.AgentRuntime{ObjectMeta: metav1.ObjectMeta{Namespace: "team-a", Name: "bot-a"}}
	b := &v1alpha1.AgentRuntime{ObjectMeta: metav1.ObjectMeta{Namespace: "team-b", Name: "bot-b"}}
	l := newTestLive(t, a, b)

	runtimes, err := l.AgentRuntimes(context.Background(), "team-a")
	if err != nil {
		t.Fatalf("AgentRuntimes: %v", err)
	}
	if len(runtimes) != 1 || runtimes[0].Name != "bot-a" {
		t.Fatalf("unexpected runtimes: %+v", runtimes)
	}
}

func TestLiveGetMissingIsNotFound(t *testing.T) {
	l := newTestLive(t)
	_, err := l.AgentRuntime(context.Background(), "team-a", "ghost")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLiveSharedProviders(t *testing.T) {
	shared := &v1alpha1.Provider{ObjectMeta: metav1.ObjectMeta{Namespace: "omnia-shared", Name: "claude"}}
	private := &v1alpha1.Provider{ObjectMeta: metav1.ObjectMeta{Namespace: "team-a", Name: "own"}}
	l := newTestLive(t, shared, private)

	providers, err := l.SharedProviders(context.Background())
	if err != nil {
		t.Fatalf("SharedProviders: %v", err)
	}
	if len(providers) != 1 || providers[0].Name != "claude" {
		t.Fatalf("unexpected providers: %+v", providers)
	}
}

func TestLiveSecretsHideValues(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "team-a", Name: "api-key"},
		Type:       corev1.SecretTypeOpaque,
		Data:       map[string][]byte{"token": []byte("s3cret"), "endpoint": []byte("https://api")},
	}
	scheme := testScheme(t)
	c := fake.NewClientBuilder().WithScheme(scheme).Build()
	l := NewLive(c, k8sfake.NewSimpleClientset(secret), nil, workspaceLabel, "omnia-shared")

	infos, err := l.Secrets(context.Background(), "team-a")
	if err != nil {
		t.Fatalf("Secrets: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("expected 1 secret, got %d", len(infos))
	}
	if got := infos[0].Keys; len(got) != 2 || got[0] != "endpoint" || got[1] != "token" {
		t.Fatalf("unexpected keys: %v", got)
	}
}

func TestLiveCancelArenaJobSuspends(t *testing.T) {
	job := &v1alpha1.ArenaJob{
		ObjectMeta: metav1.ObjectMeta{Namespace: "team-a", Name: "eval-1"},
		Status:     v1alpha1.ArenaJobStatus{Phase: v1alpha1.ArenaJobPhaseRunning},
	}
	l := newTestLive(t, job)
	ctx := context.Background()

	if err := l.CancelArenaJob(ctx, "team-a", "eval-1"); err != nil {
		t.Fatalf("CancelArenaJob: %v", err)
	}
	got, err := l.ArenaJob(ctx, "team-a", "eval-1")
	if err != nil {
		t.Fatalf("ArenaJob: %v", err)
	}
	if !got.Spec.Suspend {
		t.Error("job not suspended")
	}
}

func TestLiveCancelTerminalJobIsNoOp(t *testing.T) {
	job := &v1alpha1.ArenaJob{
		ObjectMeta: metav1.ObjectMeta{Namespace: "team-a", Name: "eval-2"},
		Status:     v1alpha1.ArenaJobStatus{Phase: v1alpha1.ArenaJobPhaseSucceeded},
	}
	l := newTestLive(t, job)

	if err := l.CancelArenaJob(context.Background(), "team-a", "eval-2"); err != nil {
		t.Fatalf("CancelArenaJob: %v", err)
	}
	got, _ := l.ArenaJob(context.Background(), "team-a", "eval-2")
	if got.Spec.Suspend {
		t.Error("terminal job should not be mutated")
	}
}

func TestLiveCreateArenaSourceForcesWorkspace(t *testing.T) {
	l := newTestLive(t)
	source := &v1alpha1.ArenaSource{ObjectMeta: metav1.ObjectMeta{Namespace: "elsewhere", Name: "s1"}}

	if err := l.CreateArenaSource(context.Background(), "team-a", source); err != nil {
		t.Fatalf("CreateArenaSource: %v", err)
	}
	got, err := l.ArenaSource(context.Background(), "team-a", "s1")
	if err != nil {
		t.Fatalf("ArenaSource: %v", err)
	}
	if got.Namespace != "team-a" {
		t.Errorf("namespace = %q", got.Namespace)
	}
}

func TestLiveSessionsWithoutStore(t *testing.T) {
	l := newTestLive(t)
	if _, err := l.Sessions(context.Background(), "team-a", "", 0); err != ErrSessionStoreUnavailable {
		t.Fatalf("expected ErrSessionStoreUnavailable, got %v", err)
	}
}

// notFoundSessions mimics the session store reading a database with no
// matching rows.
type notFoundSessions struct{}

func (notFoundSessions) ListSessions(ctx context.Context, workspace, runtime string, limit int) ([]session.Session, error) {
	return nil, nil
}

func (notFoundSessions) GetSession(ctx context.Context, workspace, id string) (*session.Session, error) {
	return nil, fmt.Errorf("session %s/%s: %w", workspace, id, session.ErrSessionNotFound)
}

func (notFoundSessions) GetTranscript(ctx context.Context, workspace, sessionID string, since time.Time) ([]session.TranscriptEvent, error) {
	return nil, fmt.Errorf("session %s/%s: %w", workspace, sessionID, session.ErrSessionNotFound)
}

func (notFoundSessions) UsageSince(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error) {
	return nil, nil
}

func TestLiveMissingSessionIsNotFound(t *testing.T) {
	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()
	l := NewLive(c, k8sfake.NewSimpleClientset(), notFoundSessions{}, workspaceLabel, "omnia-shared")

	_, err := l.Session(context.Background(), "team-a", "sess-missing")
	if err == nil {
		t.Fatal("expected error for missing session")
	}
	if !IsNotFound(err) {
		t.Errorf("missing session should be recognized as not found, got %v", err)
	}

	_, err = l.Transcript(context.Background(), "team-a", "sess-missing", time.Time{})
	if !IsNotFound(err) {
		t.Errorf("transcript of missing session should be recognized as not found, got %v", err)
	}
}
