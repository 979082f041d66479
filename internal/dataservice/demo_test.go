package dataservice

import (
	"context"
	"testing"
	"time"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
)

const testSharedNS = "omnia-shared"

func newTestDemo() *Demo {
	return NewDemo(testSharedNS)
}

// ── reads ──

func TestDemoWorkspacesAreStable(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestDemo().Workspaces(ctx)
	b, _ := newTestDemo().Workspaces(ctx)

	if len(a) == 0 {
		t.Fatal("expected fixture workspaces")
	}
	if len(a) != len(b) {
		t.Fatalf("fixture sets differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("workspace %d differs: %q vs %q", i, a[i].Name, b[i].Name)
		}
	}
}

func TestDemoUnknownWorkspaceIsNotFound(t *testing.T) {
	d := newTestDemo()
	if _, err := d.AgentRuntimes(context.Background(), "nope"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDemoGetAgentRuntime(t *testing.T) {
	d := newTestDemo()
	runtime, err := d.AgentRuntime(context.Background(), "acme-support", "support-bot")
	if err != nil {
		t.Fatalf("AgentRuntime: %v", err)
	}
	if runtime.Status.Phase != v1alpha1.AgentRuntimePhaseRunning {
		t.Errorf("phase = %q", runtime.Status.Phase)
	}
	if runtime.Spec.PromptPackRef.Track == nil || *runtime.Spec.PromptPackRef.Track != "stable" {
		t.Error("expected stable track ref")
	}

	if _, err := d.AgentRuntime(context.Background(), "acme-support", "ghost"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDemoSharedProvidersCarryPricing(t *testing.T) {
	providers, err := newTestDemo().SharedProviders(context.Background())
	if err != nil {
		t.Fatalf("SharedProviders: %v", err)
	}
	if len(providers) < 2 {
		t.Fatalf("expected several shared providers, got %d", len(providers))
	}
	for _, p := range providers {
		if p.Spec.Pricing == nil {
			t.Errorf("provider %s has no pricing", p.Name)
		}
	}
}

func TestDemoSecretsAreMetadataOnly(t *testing.T) {
	secrets, err := newTestDemo().Secrets(context.Background(), "acme-support")
	if err != nil {
		t.Fatalf("Secrets: %v", err)
	}
	if len(secrets) == 0 {
		t.Fatal("expected fixture secrets")
	}
	for _, s := range secrets {
		if len(s.Keys) == 0 {
			t.Errorf("secret %s has no key names", s.Name)
		}
	}
}

// ── arena writes ──

func TestDemoCreateAndDeleteArenaSource(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	source := &v1alpha1.ArenaSource{}
	source.Name = "fresh-sample"
	source.Spec = v1alpha1.ArenaSourceSpec{Project: "deflection-quality", Type: v1alpha1.ArenaSourceTypeDataset, URI: "s3://x/y.jsonl"}

	if err := d.CreateArenaSource(ctx, "acme-support", source); err != nil {
		t.Fatalf("CreateArenaSource: %v", err)
	}
	got, err := d.ArenaSource(ctx, "acme-support", "fresh-sample")
	if err != nil {
		t.Fatalf("ArenaSource after create: %v", err)
	}
	if got.Spec.Format != "jsonl" {
		t.Errorf("format not defaulted: %q", got.Spec.Format)
	}
	if got.Status.Phase != v1alpha1.ArenaSourcePhasePending {
		t.Errorf("phase = %q", got.Status.Phase)
	}

	if err := d.CreateArenaSource(ctx, "acme-support", source.DeepCopy()); err == nil {
		t.Fatal("expected duplicate create to fail")
	}

	if err := d.DeleteArenaSource(ctx, "acme-support", "fresh-sample"); err != nil {
		t.Fatalf("DeleteArenaSource: %v", err)
	}
	if _, err := d.ArenaSource(ctx, "acme-support", "fresh-sample"); !IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestDemoCancelArenaJob(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	if err := d.CancelArenaJob(ctx, "acme-support", "eval-143"); err != nil {
		t.Fatalf("CancelArenaJob: %v", err)
	}
	job, err := d.ArenaJob(ctx, "acme-support", "eval-143")
	if err != nil {
		t.Fatalf("ArenaJob: %v", err)
	}
	if !job.Spec.Suspend {
		t.Error("job not suspended")
	}
	if job.Status.Phase != v1alpha1.ArenaJobPhaseCanceled {
		t.Errorf("phase = %q", job.Status.Phase)
	}

	// Cancelling a terminal job is a no-op.
	if err := d.CancelArenaJob(ctx, "acme-support", "eval-142"); err != nil {
		t.Fatalf("cancel of terminal job: %v", err)
	}
	done, _ := d.ArenaJob(ctx, "acme-support", "eval-142")
	if done.Status.Phase != v1alpha1.ArenaJobPhaseSucceeded {
		t.Errorf("terminal job mutated: %q", done.Status.Phase)
	}
}

// ── sessions and usage ──

func TestDemoSessionsFilterByRuntime(t *testing.T) {
	d := newTestDemo()
	sessions, err := d.Sessions(context.Background(), "acme-support", "support-bot", 0)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) == 0 {
		t.Fatal("expected sessions for support-bot")
	}
	for _, s := range sessions {
		if s.Runtime != "support-bot" {
			t.Errorf("unexpected runtime %q", s.Runtime)
		}
	}
}

func TestDemoTranscriptSince(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	all, err := d.Transcript(ctx, "acme-support", "sess-0001", time.Time{})
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected a few events, got %d", len(all))
	}

	tail, err := d.Transcript(ctx, "acme-support", "sess-0001", all[1].Timestamp)
	if err != nil {
		t.Fatalf("Transcript since: %v", err)
	}
	if len(tail) != len(all)-2 {
		t.Fatalf("since filter: got %d, want %d", len(tail), len(all)-2)
	}
}

func TestDemoUsageScalesWithWindow(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	oneHour, err := d.Usage(ctx, "acme-support", time.Hour)
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	twoHours, _ := d.Usage(ctx, "acme-support", 2*time.Hour)

	if len(oneHour) == 0 {
		t.Fatal("expected usage fixtures")
	}
	if twoHours[0].InputTokens != 2*oneHour[0].InputTokens {
		t.Errorf("usage did not scale: %v vs %v", twoHours[0].InputTokens, oneHour[0].InputTokens)
	}
}
