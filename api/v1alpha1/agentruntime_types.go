package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PromptPackRef references the PromptPack an AgentRuntime deploys.
type PromptPackRef struct {
	// Name is the name of the PromptPack resource.
	Name string `json:"name"`

	// Version pins a specific PromptPack version.
	// If not specified, Track is used instead.
	// +optional
	Version *string `json:"version,omitempty"`

	// Track is the release track to follow (e.g. "stable", "canary").
	// Only used when Version is not specified.
	// +kubebuilder:default="stable"
	// +optional
	Track *string `json:"track,omitempty"`
}

// FacadeType is the protocol the client-facing facade speaks.
// +kubebuilder:validation:Enum=websocket;grpc
type FacadeType string

const (
	FacadeTypeWebSocket FacadeType = "websocket"
	FacadeTypeGRPC      FacadeType = "grpc"
)

// HandlerMode selects the facade's message handler.
// +kubebuilder:validation:Enum=echo;demo;runtime
type HandlerMode string

const (
	// HandlerModeEcho echoes the input back (connectivity testing).
	HandlerModeEcho HandlerMode = "echo"
	// HandlerModeDemo streams canned responses (demos).
	HandlerModeDemo HandlerMode = "demo"
	// HandlerModeRuntime uses the agent framework in the container (production).
	HandlerModeRuntime HandlerMode = "runtime"
)

// FacadeConfig configures the client-facing connection interface.
type FacadeConfig struct {
	// Type is the facade protocol.
	// +kubebuilder:default="websocket"
	Type FacadeType `json:"type"`

	// Port is the facade service port.
	// +kubebuilder:default=8080
	// +optional
	Port *int32 `json:"port,omitempty"`

	// Handler selects the message handler mode.
	// +kubebuilder:default="runtime"
	// +optional
	Handler *HandlerMode `json:"handler,omitempty"`
}

// ToolRegistryRef references a ToolRegistry resource.
type ToolRegistryRef struct {
	// Name is the name of the ToolRegistry resource.
	Name string `json:"name"`

	// Namespace of the ToolRegistry. Defaults to the AgentRuntime's namespace.
	// +optional
	Namespace *string `json:"namespace,omitempty"`
}

// ProviderRef references a Provider resource.
type ProviderRef struct {
	// Name is the name of the Provider resource.
	Name string `json:"name"`

	// Namespace of the Provider. Defaults to the AgentRuntime's namespace.
	// +optional
	Namespace *string `json:"namespace,omitempty"`
}

// SessionStoreType is the session store backend.
// +kubebuilder:validation:Enum=memory;redis;postgres
type SessionStoreType string

const (
	SessionStoreTypeMemory   SessionStoreType = "memory"
	SessionStoreTypeRedis    SessionStoreType = "redis"
	SessionStoreTypePostgres SessionStoreType = "postgres"
)

// SessionConfig configures session management for the runtime.
type SessionConfig struct {
	// Type is the session store backend.
	// +kubebuilder:default="memory"
	Type SessionStoreType `json:"type"`

	// TTL is the session time-to-live (e.g. "24h", "30m").
	// +kubebuilder:default="24h"
	// +optional
	TTL *string `json:"ttl,omitempty"`
}

// AgentRuntimeSpec defines the desired state of an AgentRuntime.
type AgentRuntimeSpec struct {
	// Framework is the agent framework to run (promptkit, langchain,
	// crewai, autogen, custom). Defaults to promptkit.
	// +kubebuilder:default="promptkit"
	// +optional
	Framework string `json:"framework,omitempty"`

	// PromptPackRef references the PromptPack with the agent's prompts.
	PromptPackRef PromptPackRef `json:"promptPackRef"`

	// Facade configures the client-facing connection interface.
	Facade FacadeConfig `json:"facade"`

	// ToolRegistryRef optionally references a ToolRegistry of available tools.
	// +optional
	ToolRegistryRef *ToolRegistryRef `json:"toolRegistryRef,omitempty"`

	// ProviderRef references the Provider with LLM configuration.
	// +optional
	ProviderRef *ProviderRef `json:"providerRef,omitempty"`

	// Session configures session management and storage.
	// +optional
	Session *SessionConfig `json:"session,omitempty"`

	// Replicas is the desired number of runtime pods.
	// +kubebuilder:default=1
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`
}

// AgentRuntimePhase is the lifecycle phase of an AgentRuntime.
// +kubebuilder:validation:Enum=Pending;Running;Failed
type AgentRuntimePhase string

const (
	AgentRuntimePhasePending AgentRuntimePhase = "Pending"
	AgentRuntimePhaseRunning AgentRuntimePhase = "Running"
	AgentRuntimePhaseFailed  AgentRuntimePhase = "Failed"
)

// ReplicaStatus tracks replica counts for the runtime deployment.
type ReplicaStatus struct {
	Desired   int32 `json:"desired"`
	Ready     int32 `json:"ready"`
	Available int32 `json:"available"`
}

// AgentRuntimeStatus defines the observed state of an AgentRuntime.
type AgentRuntimeStatus struct {
	// Phase is the current lifecycle phase.
	// +optional
	Phase AgentRuntimePhase `json:"phase,omitempty"`

	// Replicas tracks replica counts for the deployment.
	// +optional
	Replicas *ReplicaStatus `json:"replicas,omitempty"`

	// ActiveVersion is the currently deployed PromptPack version.
	// +optional
	ActiveVersion *string `json:"activeVersion,omitempty"`

	// Conditions represent the current state of the resource.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// ObservedGeneration is the most recent generation seen by the operator.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=`.status.replicas.ready`
// +kubebuilder:printcolumn:name="Version",type=string,JSONPath=`.status.activeVersion`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// AgentRuntime is the Schema for the agentruntimes API.
// It deploys an agent with its prompt pack, provider, and facade.
type AgentRuntime struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AgentRuntimeSpec   `json:"spec,omitempty"`
	Status AgentRuntimeStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// AgentRuntimeList contains a list of AgentRuntime.
type AgentRuntimeList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AgentRuntime `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AgentRuntime{}, &AgentRuntimeList{})
}
