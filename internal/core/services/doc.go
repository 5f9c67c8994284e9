// Package services implements the driving port interfaces.
// Services contain the core translation logic: language detection,
// retrieval-context formatting, and prompt-grounded generation, all
// orchestrated through driven ports (adapters).
package services
