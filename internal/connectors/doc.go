// Package connectors provides the adapters that load source documents.
// The filesystem connector reads local files and watches them for changes.
package connectors
