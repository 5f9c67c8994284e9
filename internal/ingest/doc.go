// Package ingest converts raw reference sources into documents and builds
// the vector store. Ingestion is a one-time, offline batch operation; it
// runs to completion before any translation request is served.
package ingest
