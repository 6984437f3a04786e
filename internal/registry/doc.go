// Package registry implements the build pipeline: discover component
// directories, validate every descriptor, aggregate the valid ones
// into the registry document, and emit the output tree with the
// documentation site and manifests. It also loads built registries
// and fetches published ones for browsing commands.
package registry
