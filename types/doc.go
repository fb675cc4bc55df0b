// Package types holds the identity contract shared by all entities plus the
// filter and pagination value types used by repositories and services.
package types
