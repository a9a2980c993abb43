// Package app wires configuration, logging, the manifest loader, the graph,
// the router and the optional HTTP server into one runnable unit.
//
// Route output goes to the output writer; logs go to the log writer, so the
// route lines stay machine-readable.
package app
