// Package main is the entry point for the Omnia console service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/client-go/kubernetes"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	omniav1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/apiserver"
	"github.com/altairalabs/omnia-console/internal/config"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/dataservice"
	"github.com/altairalabs/omnia-console/internal/eventbus"
	"github.com/altairalabs/omnia-console/internal/logstream"
	"github.com/altairalabs/omnia-console/internal/observability"
	"github.com/altairalabs/omnia-console/internal/promquery"
	"github.com/altairalabs/omnia-console/internal/query"
	"github.com/altairalabs/omnia-console/internal/session"
	"github.com/altairalabs/omnia-console/internal/tabs"
)

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(omniav1alpha1.AddToScheme(scheme))
}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "console",
		Short: "Omnia console - dashboard backend for the Omnia agent platform",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the console API and dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to the console config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("omnia-console v0.1.0-dev")
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(configPath string) error {
	log := zap.New(zap.UseDevMode(os.Getenv("OMNIA_CONSOLE_DEV") == "true"))
	ctrl.SetLogger(log)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	obs := observability.Init(ctx, log.WithName("otel"))
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			log.Error(err, "observability shutdown failed")
		}
	}()

	tabStore, err := tabs.NewStore(cfg.Tabs.Path, cfg.Tabs.Capacity)
	if err != nil {
		return fmt.Errorf("opening tab store: %w", err)
	}
	defer tabStore.CloseStore()

	opts := apiserver.Options{
		Config: cfg,
		Cache:  query.New(cfg.CacheTTL.Std()),
		Tabs:   tabStore,
		Log:    log.WithName("apiserver"),
	}

	switch cfg.Mode {
	case config.ModeDemo:
		log.Info("Running in demo mode with fixture data")
		opts.Data = dataservice.NewDemo(cfg.SharedNamespace)
		opts.LogSource = func(ctx context.Context, workspace, runtime string) (logstream.Source, error) {
			return logstream.DemoSource(runtime), nil
		}
	case config.ModeLive:
		if err := wireLive(ctx, cfg, log, &opts); err != nil {
			return err
		}
	}

	server := apiserver.NewServer(opts)

	// Pre-warm cost snapshots on the configured schedule.
	refresher, err := cost.NewRefresher(cfg.Cost.RefreshSchedule, server.WarmCost, log.WithName("cost"))
	if err != nil {
		return fmt.Errorf("cost refresh schedule: %w", err)
	}
	go refresher.Run(ctx)

	// Hot-reload the config file so frontend-visible settings follow edits.
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, log.WithName("config"), server.UpdateConfig)
		if err != nil {
			log.Error(err, "config watcher unavailable")
		} else {
			go watcher.Run(ctx)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartWith(cfg.ListenAddr, obs.Middleware)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
		return nil
	case err := <-errCh:
		return err
	}
}

// wireLive builds the live collaborators: cluster clients, the session
// store, the event bus, and Prometheus.
func wireLive(ctx context.Context, cfg *config.Config, log logr.Logger, opts *apiserver.Options) error {
	restCfg := ctrl.GetConfigOrDie()
	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{Scheme: scheme})
	if err != nil {
		return fmt.Errorf("creating manager: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return fmt.Errorf("creating clientset: %w", err)
	}

	// Start the manager cache in background.
	go func() {
		if err := mgr.Start(ctx); err != nil {
			log.Error(err, "manager failed")
			os.Exit(1)
		}
	}()
	if !mgr.GetCache().WaitForCacheSync(ctx) {
		return fmt.Errorf("cache sync failed")
	}

	var sessions dataservice.SessionSource
	if cfg.SessionStore.DatabaseURL != "" {
		store, err := session.NewStore(ctx, cfg.SessionStore.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting session store: %w", err)
		}
		sessions = store
	} else {
		log.Info("No session database configured; session views disabled")
	}

	opts.Data = dataservice.NewLive(mgr.GetClient(), clientset, sessions, cfg.WorkspaceLabel, cfg.SharedNamespace)

	if cfg.EventBus.URL != "" {
		bus, err := eventbus.NewNATSEventBus(cfg.EventBus.URL)
		if err != nil {
			log.Error(err, "event bus unavailable; session streaming disabled")
		} else {
			opts.Bus = bus
		}
	}

	if cfg.Prometheus.URL != "" {
		prom, err := promquery.NewClient(cfg.Prometheus.URL)
		if err != nil {
			return fmt.Errorf("creating prometheus client: %w", err)
		}
		opts.Prom = prom
	}

	runtimeLabel := "omnia.altairalabs.ai/runtime"
	opts.LogSource = func(ctx context.Context, workspace, runtime string) (logstream.Source, error) {
		pods, err := clientset.CoreV1().Pods(workspace).List(ctx, metav1.ListOptions{
			LabelSelector: runtimeLabel + "=" + runtime,
		})
		if err != nil {
			return nil, fmt.Errorf("listing pods for %s/%s: %w", workspace, runtime, err)
		}
		if len(pods.Items) == 0 {
			return nil, fmt.Errorf("no pods for runtime %s/%s", workspace, runtime)
		}
		return logstream.PodLogSource(clientset, workspace, pods.Items[0].Name, "", 200), nil
	}

	return nil
}
