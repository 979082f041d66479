// Package v1alpha1 contains the client-side schema declarations for the
// Omnia API group. The resources themselves are owned and reconciled by the
// platform operator; the console only reads (and for arena resources,
// writes) them.
// +kubebuilder:object:generate=true
// +groupName=omnia.altairalabs.ai
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is the group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "omnia.altairalabs.ai", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
