// Package links defines the link resolution contracts shared by map builders.
// A LinkBuilder turns a LinkRequest into ResolvedLinks; records describing the
// generated URLs can be persisted through a LinkStore and observed through a
// LinkObserver. NopStore and NopObserver provide default no-op implementations.
package links
