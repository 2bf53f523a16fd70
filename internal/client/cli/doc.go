// Package cli provides the interactive InnovateHub Collab command-line client.
//
// It wires configuration, the remote resource client, the resource query
// cache, the mutation dispatcher and the echo assistant into a REPL that
// plays the role of the tabbed workspace view. Typical flow: load the three
// resource lists, start a background connectivity watcher, and execute user
// commands until exit.
//
// Key features:
//   - Tabs: projects, documents, files
//   - Create projects and documents, upload files
//   - Chat with the echo assistant
//   - Manual refresh of failed or stale lists
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
