// Package domain contains the core business entities for the translator:
// documents, languages, translation requests and results, and the domain
// error taxonomy. It has no dependencies on adapters or infrastructure.
package domain
