// Package core contains the page lifecycle contracts and the state machine
// that decides which page is mounted.
//
// Allowed here:
// - the View contract, the shared Container and its nodes
// - the page Controller, navigation messages and the root bubbletea model
// - key registry, header/status/footer chrome
//
// Not allowed here:
// - concrete page rendering implementations (see package screens)
// - task store access other than through task.Service
package core
