package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ProviderType is the LLM provider family.
// +kubebuilder:validation:Enum=auto;claude;openai;gemini
type ProviderType string

const (
	// ProviderTypeAuto auto-detects the provider from available credentials.
	ProviderTypeAuto   ProviderType = "auto"
	ProviderTypeClaude ProviderType = "claude"
	ProviderTypeOpenAI ProviderType = "openai"
	ProviderTypeGemini ProviderType = "gemini"
)

// ProviderDefaults holds tuning parameters applied to requests.
type ProviderDefaults struct {
	// Temperature controls randomness (0.0-2.0). Decimal as a string.
	// +optional
	Temperature string `json:"temperature,omitempty"`

	// TopP controls nucleus sampling (0.0-1.0). Decimal as a string.
	// +optional
	TopP string `json:"topP,omitempty"`

	// MaxTokens caps response length.
	// +optional
	MaxTokens *int32 `json:"maxTokens,omitempty"`
}

// ProviderPricing configures cost tracking, in dollars per 1000 tokens.
// Decimals are strings (e.g. "0.003") to avoid float drift in manifests.
type ProviderPricing struct {
	// InputCostPer1K is the cost per 1000 input tokens.
	// +optional
	InputCostPer1K string `json:"inputCostPer1K,omitempty"`

	// OutputCostPer1K is the cost per 1000 output tokens.
	// +optional
	OutputCostPer1K string `json:"outputCostPer1K,omitempty"`

	// CachedCostPer1K is the cost per 1000 cached input tokens.
	// +optional
	CachedCostPer1K string `json:"cachedCostPer1K,omitempty"`
}

// ProviderSpec defines the desired state of a Provider.
type ProviderSpec struct {
	// Type is the provider family.
	// +kubebuilder:default="auto"
	// +optional
	Type ProviderType `json:"type,omitempty"`

	// Model is the model identifier (e.g. "claude-sonnet-4-20250514").
	// +optional
	Model string `json:"model,omitempty"`

	// BaseURL overrides the provider's default API endpoint.
	// +optional
	BaseURL string `json:"baseURL,omitempty"`

	// SecretRef names the Secret holding API credentials.
	// +optional
	SecretRef string `json:"secretRef,omitempty"`

	// Defaults are tuning parameters applied to requests.
	// +optional
	Defaults *ProviderDefaults `json:"defaults,omitempty"`

	// Pricing configures cost tracking for this provider.
	// +optional
	Pricing *ProviderPricing `json:"pricing,omitempty"`
}

// ProviderStatus defines the observed state of a Provider.
type ProviderStatus struct {
	// Ready reports whether the provider credentials validated.
	// +optional
	Ready bool `json:"ready,omitempty"`

	// Message carries detail when Ready is false.
	// +optional
	Message string `json:"message,omitempty"`

	// Conditions represent the current state of the resource.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`
// +kubebuilder:printcolumn:name="Model",type=string,JSONPath=`.spec.model`
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Provider is the Schema for the providers API.
// It holds LLM provider configuration shared by AgentRuntimes.
type Provider struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ProviderSpec   `json:"spec,omitempty"`
	Status ProviderStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ProviderList contains a list of Provider.
type ProviderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Provider `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Provider{}, &ProviderList{})
}
