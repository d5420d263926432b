// Package input produces core graphs from outside the process: YAML or JSON
// documents on disk (optionally hot-reloaded with fsnotify) and the
// interactive console dialogue.
//
// Document shape:
//
//	vertices: [Home, Office, Gym]
//	edges:
//	  - {from: Home, to: Office, weight: 5}
//	  - {from: Office, to: Gym, weight: 2}
//
// JSON is accepted as-is since it is a subset of YAML. Unknown keys are rejected.
package input
