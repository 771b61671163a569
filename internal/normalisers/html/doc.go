// Package html provides a Normaliser implementation for HTML documents.
// It keeps the running text of paragraph elements and collects citation
// elements separately, stripping tags, scripts and styles and decoding
// entities on the way.
package html
