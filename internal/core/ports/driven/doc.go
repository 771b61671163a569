// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Transforms raw source files into plain-text documents
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - TextProcessor / TextPipeline: Cleans document text before splitting
//   - SentenceSplitter: Splits cleaned text into sentences
//   - Tokenizer: Splits a sentence into words, keeping protected spans whole
//   - Tagger: Assigns a part-of-speech tag to every token
//   - DocumentSource / ChangeWatcher: Loads and watches source files
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, tokenizer, tagger, or normaliser package
package driven
