package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ToolDefinition describes a single tool exposed to agents.
type ToolDefinition struct {
	// Name identifies the tool.
	Name string `json:"name"`

	// Description is shown to the model when the tool is offered.
	// +optional
	Description string `json:"description,omitempty"`

	// Endpoint is the URL of the tool server (MCP or HTTP).
	Endpoint string `json:"endpoint"`

	// Timeout bounds a single tool invocation.
	// +optional
	Timeout *metav1.Duration `json:"timeout,omitempty"`
}

// ToolRegistrySpec defines the desired state of a ToolRegistry.
type ToolRegistrySpec struct {
	// Description is a human-readable summary of the registry.
	// +optional
	Description string `json:"description,omitempty"`

	// Tools registered for agent use.
	Tools []ToolDefinition `json:"tools"`
}

// ToolRegistryPhase is the lifecycle phase of a ToolRegistry.
// +kubebuilder:validation:Enum=Pending;Ready;Failed
type ToolRegistryPhase string

const (
	ToolRegistryPhasePending ToolRegistryPhase = "Pending"
	ToolRegistryPhaseReady   ToolRegistryPhase = "Ready"
	ToolRegistryPhaseFailed  ToolRegistryPhase = "Failed"
)

// ToolRegistryStatus defines the observed state of a ToolRegistry.
type ToolRegistryStatus struct {
	// Phase is the current lifecycle phase.
	// +optional
	Phase ToolRegistryPhase `json:"phase,omitempty"`

	// ToolCount is the number of tools that passed validation.
	// +optional
	ToolCount int32 `json:"toolCount,omitempty"`

	// Conditions represent the current state of the resource.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Tools",type=integer,JSONPath=`.status.toolCount`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ToolRegistry is the Schema for the toolregistries API.
type ToolRegistry struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ToolRegistrySpec   `json:"spec,omitempty"`
	Status ToolRegistryStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ToolRegistryList contains a list of ToolRegistry.
type ToolRegistryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ToolRegistry `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ToolRegistry{}, &ToolRegistryList{})
}
