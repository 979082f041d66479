// Package main provides the omniactl CLI for inspecting Omnia resources.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	omniav1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
)

var (
	kubeconfig string
	workspace  string
	k8sClient  client.Client
)

const workspaceLabel = "omnia.altairalabs.ai/workspace"

func main() {
	rootCmd := &cobra.Command{
		Use:   "omniactl",
		Short: "Omnia - inspect agent runtimes, prompt packs, and arena runs",
		Long: `omniactl is a read-side CLI for the Omnia agent platform: it lists
workspaces, AgentRuntimes, PromptPacks, Providers, and arena evaluation jobs.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initClient()
		},
	}

	rootCmd.PersistentFlags().StringVar(&kubeconfig, "kubeconfig", "", "Path to kubeconfig")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "default", "Workspace (namespace)")

	rootCmd.AddCommand(
		newWorkspacesCmd(),
		newRuntimesCmd(),
		newPacksCmd(),
		newProvidersCmd(),
		newArenaCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initClient() error {
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return fmt.Errorf("failed to register core scheme: %w", err)
	}
	if err := omniav1alpha1.AddToScheme(scheme); err != nil {
		return fmt.Errorf("failed to register scheme: %w", err)
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		loadingRules.ExplicitPath = kubeconfig
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules, &clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	c, err := client.New(config, client.Options{Scheme: scheme})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	k8sClient = c
	return nil
}

func newWorkspacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"workspace", "ws"},
		Short:   "List workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var list corev1.NamespaceList
			if err := k8sClient.List(ctx, &list, client.HasLabels{workspaceLabel}); err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISPLAY NAME\tAGE")
			for _, ns := range list.Items {
				age := time.Since(ns.CreationTimestamp.Time).Round(time.Second)
				fmt.Fprintf(w, "%s\t%s\t%s\n", ns.Name, ns.Labels[workspaceLabel], age)
			}
			return w.Flush()
		},
	}
}

func newRuntimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "runtimes",
		Aliases: []string{"runtime", "rt"},
		Short:   "Manage AgentRuntimes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List AgentRuntimes",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var list omniav1alpha1.AgentRuntimeList
				if err := k8sClient.List(ctx, &list, client.InNamespace(workspace)); err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tFRAMEWORK\tPHASE\tREADY\tVERSION\tAGE")
				for _, rt := range list.Items {
					age := time.Since(rt.CreationTimestamp.Time).Round(time.Second)
					ready := "0/0"
					if rt.Status.Replicas != nil {
						ready = fmt.Sprintf("%d/%d", rt.Status.Replicas.Ready, rt.Status.Replicas.Desired)
					}
					version := ""
					if rt.Status.ActiveVersion != nil {
						version = *rt.Status.ActiveVersion
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						rt.Name, rt.Spec.Framework, rt.Status.Phase, ready, version, age)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "get [name]",
			Short: "Get an AgentRuntime",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var rt omniav1alpha1.AgentRuntime
				if err := k8sClient.Get(ctx, types.NamespacedName{Name: args[0], Namespace: workspace}, &rt); err != nil {
					return err
				}
				data, _ := json.MarshalIndent(rt, "", "  ")
				fmt.Println(string(data))
				return nil
			},
		},
	)
	return cmd
}

func newPacksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packs",
		Aliases: []string{"pack", "pp"},
		Short:   "Manage PromptPacks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List PromptPacks",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var list omniav1alpha1.PromptPackList
				if err := k8sClient.List(ctx, &list, client.InNamespace(workspace)); err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tVERSION\tPHASE\tPROMPTS\tTRACKS\tAGE")
				for _, pack := range list.Items {
					age := time.Since(pack.CreationTimestamp.Time).Round(time.Second)
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
						pack.Name, pack.Spec.Version, pack.Status.Phase,
						len(pack.Spec.Prompts), len(pack.Spec.Tracks), age)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "get [name]",
			Short: "Get a PromptPack",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var pack omniav1alpha1.PromptPack
				if err := k8sClient.Get(ctx, types.NamespacedName{Name: args[0], Namespace: workspace}, &pack); err != nil {
					return err
				}
				data, _ := json.MarshalIndent(pack, "", "  ")
				fmt.Println(string(data))
				return nil
			},
		},
	)
	return cmd
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider", "prov"},
		Short:   "List Providers in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var list omniav1alpha1.ProviderList
			if err := k8sClient.List(ctx, &list, client.InNamespace(workspace)); err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tMODEL\tREADY\tAGE")
			for _, p := range list.Items {
				age := time.Since(p.CreationTimestamp.Time).Round(time.Second)
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
					p.Name, p.Spec.Type, p.Spec.Model, p.Status.Ready, age)
			}
			return w.Flush()
		},
	}
}

func newArenaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Inspect arena evaluation runs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "jobs",
			Short: "List ArenaJobs",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var list omniav1alpha1.ArenaJobList
				if err := k8sClient.List(ctx, &list, client.InNamespace(workspace)); err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPROJECT\tRUNTIME\tPHASE\tPROGRESS\tSCORE\tAGE")
				for _, job := range list.Items {
					age := time.Since(job.CreationTimestamp.Time).Round(time.Second)
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\n",
						job.Name, job.Spec.Project, job.Spec.RuntimeRef,
						job.Status.Phase, job.Status.Progress, job.Status.Score, age)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "cancel [name]",
			Short: "Cancel an ArenaJob",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var job omniav1alpha1.ArenaJob
				if err := k8sClient.Get(ctx, types.NamespacedName{Name: args[0], Namespace: workspace}, &job); err != nil {
					return err
				}
				if job.Spec.Suspend {
					fmt.Printf("arenajob/%s already cancelled\n", args[0])
					return nil
				}
				job.Spec.Suspend = true
				if err := k8sClient.Update(ctx, &job); err != nil {
					return err
				}
				fmt.Printf("arenajob/%s cancelled\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "sources",
			Short: "List ArenaSources",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				var list omniav1alpha1.ArenaSourceList
				if err := k8sClient.List(ctx, &list, client.InNamespace(workspace)); err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPROJECT\tTYPE\tPHASE\tRECORDS\tAGE")
				for _, src := range list.Items {
					age := time.Since(src.CreationTimestamp.Time).Round(time.Second)
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
						src.Name, src.Spec.Project, src.Spec.Type,
						src.Status.Phase, src.Status.Records, age)
				}
				return w.Flush()
			},
		},
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("omniactl v0.1.0-dev")
		},
	}
}
