package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PromptDefinition is a single named prompt within a pack.
type PromptDefinition struct {
	// Name identifies the prompt within the pack.
	Name string `json:"name"`

	// Role the prompt is used as (system, user, assistant).
	// +kubebuilder:default="system"
	// +optional
	Role string `json:"role,omitempty"`

	// Template is the prompt template body.
	Template string `json:"template"`
}

// ReleaseTrack maps a track name to the pack version it serves.
type ReleaseTrack struct {
	// Name of the track (e.g. "stable", "canary").
	Name string `json:"name"`

	// Version served on this track.
	Version string `json:"version"`
}

// PromptPackSpec defines the desired state of a PromptPack.
type PromptPackSpec struct {
	// Description is a human-readable summary of the pack.
	// +optional
	Description string `json:"description,omitempty"`

	// Version is the version of this pack revision (semver).
	Version string `json:"version"`

	// Prompts contained in this pack.
	Prompts []PromptDefinition `json:"prompts"`

	// Tracks are the release tracks published from this pack.
	// +optional
	Tracks []ReleaseTrack `json:"tracks,omitempty"`
}

// PromptPackPhase is the lifecycle phase of a PromptPack.
// +kubebuilder:validation:Enum=Pending;Published;Failed
type PromptPackPhase string

const (
	PromptPackPhasePending   PromptPackPhase = "Pending"
	PromptPackPhasePublished PromptPackPhase = "Published"
	PromptPackPhaseFailed    PromptPackPhase = "Failed"
)

// PromptPackStatus defines the observed state of a PromptPack.
type PromptPackStatus struct {
	// Phase is the current lifecycle phase.
	// +optional
	Phase PromptPackPhase `json:"phase,omitempty"`

	// PublishedVersions lists all versions the operator has published.
	// +optional
	PublishedVersions []string `json:"publishedVersions,omitempty"`

	// Conditions represent the current state of the resource.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Version",type=string,JSONPath=`.spec.version`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// PromptPack is the Schema for the promptpacks API.
// It holds versioned agent prompts and their release tracks.
type PromptPack struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PromptPackSpec   `json:"spec,omitempty"`
	Status PromptPackStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PromptPackList contains a list of PromptPack.
type PromptPackList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PromptPack `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PromptPack{}, &PromptPackList{})
}
