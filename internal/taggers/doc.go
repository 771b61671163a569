// Package taggers provides a backoff chain of part-of-speech taggers.
//
// Each link in the chain either chooses a tag for a token or defers to the
// next link. The chain always ends in a default tag, so every token is tagged
// deterministically, including words no rule recognises.
//
// The English chain is headed by an averaged perceptron model
// (github.com/jdkato/prose/tag); a closed-class lexicon and suffix rules
// back it off. Tags follow the Penn Treebank tag set, and no link may
// produce the DATE tag, which belongs to the date overlay.
package taggers
