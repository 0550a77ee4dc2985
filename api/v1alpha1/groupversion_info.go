// Package v1alpha1 contains the request and result documents of the easelcalc API.
package v1alpha1

const (
	// Group is the API group of easelcalc documents.
	Group = "easelcalc.darkroomkit.io"
	// Version is the API version of this package.
	Version = "v1alpha1"
	// GroupVersion is the apiVersion value documents carry.
	GroupVersion = Group + "/" + Version

	// Kind is the kind of a border calculation document.
	Kind = "BorderCalculator"
)
