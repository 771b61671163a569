// Package splitters contains SentenceSplitter implementations.
package splitters
