package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ArenaSourceSpec defines a dataset or live traffic source for evaluation.
type ArenaSourceSpec struct {
	// Project is the ArenaProject this source belongs to.
	Project string `json:"project"`

	// Type of the source: "dataset" for a static file, "live" for sampled
	// production traffic.
	// +kubebuilder:validation:Enum=dataset;live
	Type string `json:"type"`

	// URI locates the dataset (s3://, https://, pvc://). Required for
	// dataset sources.
	// +optional
	URI string `json:"uri,omitempty"`

	// Format of the dataset records (jsonl, csv).
	// +kubebuilder:default="jsonl"
	// +optional
	Format string `json:"format,omitempty"`

	// SampleRate is the fraction of live traffic to capture (0.0-1.0),
	// as a decimal string. Only used for live sources.
	// +optional
	SampleRate string `json:"sampleRate,omitempty"`
}

// Valid values for ArenaSourceSpec.Type.
const (
	ArenaSourceTypeDataset = "dataset"
	ArenaSourceTypeLive    = "live"
)

// ArenaSourcePhase is the lifecycle phase of an ArenaSource.
// +kubebuilder:validation:Enum=Pending;Ready;Failed
type ArenaSourcePhase string

const (
	ArenaSourcePhasePending ArenaSourcePhase = "Pending"
	ArenaSourcePhaseReady   ArenaSourcePhase = "Ready"
	ArenaSourcePhaseFailed  ArenaSourcePhase = "Failed"
)

// ArenaSourceStatus defines the observed state of an ArenaSource.
type ArenaSourceStatus struct {
	// +optional
	Phase ArenaSourcePhase `json:"phase,omitempty"`

	// Records is the number of records ingested from the source.
	// +optional
	Records int64 `json:"records,omitempty"`

	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Project",type=string,JSONPath=`.spec.project`
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`

// ArenaSource is the Schema for the arenasources API.
type ArenaSource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ArenaSourceSpec   `json:"spec,omitempty"`
	Status ArenaSourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ArenaSourceList contains a list of ArenaSource.
type ArenaSourceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ArenaSource `json:"items"`
}

// ArenaJobSpec defines an evaluation run of a runtime against a source.
type ArenaJobSpec struct {
	// Project is the ArenaProject this job belongs to.
	Project string `json:"project"`

	// SourceRef names the ArenaSource providing evaluation input.
	SourceRef string `json:"sourceRef"`

	// RuntimeRef names the AgentRuntime under evaluation.
	RuntimeRef string `json:"runtimeRef"`

	// Suspend pauses the job when true. Setting it on a running job
	// cancels the run.
	// +optional
	Suspend bool `json:"suspend,omitempty"`
}

// ArenaJobPhase is the lifecycle phase of an ArenaJob.
// +kubebuilder:validation:Enum=Pending;Running;Succeeded;Failed;Canceled
type ArenaJobPhase string

const (
	ArenaJobPhasePending   ArenaJobPhase = "Pending"
	ArenaJobPhaseRunning   ArenaJobPhase = "Running"
	ArenaJobPhaseSucceeded ArenaJobPhase = "Succeeded"
	ArenaJobPhaseFailed    ArenaJobPhase = "Failed"
	ArenaJobPhaseCanceled  ArenaJobPhase = "Canceled"
)

// ArenaJobStatus defines the observed state of an ArenaJob.
type ArenaJobStatus struct {
	// +optional
	Phase ArenaJobPhase `json:"phase,omitempty"`

	// Progress is the percentage of records evaluated (0-100).
	// +optional
	Progress int32 `json:"progress,omitempty"`

	// Score is the aggregate evaluation score, as a decimal string.
	// +optional
	Score string `json:"score,omitempty"`

	// +optional
	StartedAt *metav1.Time `json:"startedAt,omitempty"`

	// +optional
	CompletedAt *metav1.Time `json:"completedAt,omitempty"`

	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Project",type=string,JSONPath=`.spec.project`
// +kubebuilder:printcolumn:name="Runtime",type=string,JSONPath=`.spec.runtimeRef`
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Score",type=string,JSONPath=`.status.score`

// ArenaJob is the Schema for the arenajobs API.
type ArenaJob struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ArenaJobSpec   `json:"spec,omitempty"`
	Status ArenaJobStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ArenaJobList contains a list of ArenaJob.
type ArenaJobList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ArenaJob `json:"items"`
}

// ArenaProjectSpec defines a grouping of arena sources and jobs.
type ArenaProjectSpec struct {
	// DisplayName is the human-readable project name.
	// +optional
	DisplayName string `json:"displayName,omitempty"`

	// Description of the project.
	// +optional
	Description string `json:"description,omitempty"`
}

// ArenaProjectStatus defines the observed state of an ArenaProject.
type ArenaProjectStatus struct {
	// SourceCount is the number of sources in the project.
	// +optional
	SourceCount int32 `json:"sourceCount,omitempty"`

	// JobCount is the number of jobs in the project.
	// +optional
	JobCount int32 `json:"jobCount,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Sources",type=integer,JSONPath=`.status.sourceCount`
// +kubebuilder:printcolumn:name="Jobs",type=integer,JSONPath=`.status.jobCount`

// ArenaProject is the Schema for the arenaprojects API.
type ArenaProject struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ArenaProjectSpec   `json:"spec,omitempty"`
	Status ArenaProjectStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ArenaProjectList contains a list of ArenaProject.
type ArenaProjectList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ArenaProject `json:"items"`
}

func init() {
	SchemeBuilder.Register(
		&ArenaSource{}, &ArenaSourceList{},
		&ArenaJob{}, &ArenaJobList{},
		&ArenaProject{}, &ArenaProjectList{},
	)
}
