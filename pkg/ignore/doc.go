// Package ignore compiles gitignore-syntax pattern lines into a predicate
// over relative paths. Each group directory may carry a .dootignore file;
// its rules decide which files take part in a sync.
//
// Supported syntax: '#' comments (escape a literal leading '#' with '\#'),
// '!' negation, a trailing '/' restricting a rule to directories, a leading
// '/' anchoring a rule to the tree root, '*' within a path segment, '**'
// across segments, '?' for a single character, and '[...]' character
// classes. Rules apply in file order and the last matching rule wins; a
// path with no matching rule is not ignored. Excluding a directory is
// terminal: no later negation can re-include anything beneath it.
package ignore
