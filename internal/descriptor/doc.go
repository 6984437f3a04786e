// Package descriptor defines the component descriptor model and its
// structural validation. Parse turns raw component.json bytes into a
// fully-defaulted Component or a list of violated constraints; it
// never touches the filesystem. Semantic checks that need the
// component directory live in the validate package.
package descriptor
