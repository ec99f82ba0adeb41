// Package logx configures dayplan's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//   - Log output on stderr, never mixed into the stdout command protocol
package logx
