// Package tokenizers provides implementations of the Tokenizer interface.
// A tokenizer splits one sentence into word-level tokens and must emit
// every protected span it is given as a single token.
package tokenizers
