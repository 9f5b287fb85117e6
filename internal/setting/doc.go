// Package setting defines the immutable key/value pair that flows between
// settings providers and the environment manager. A Setting may carry an
// absent value, which stands for "variable not defined".
package setting
