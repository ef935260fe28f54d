// Package screens contains the concrete pages mounted by the core controller.
//
// Allowed here:
// - page implementations that satisfy core.View (list, add, detail)
// - pure render functions and page-local key wiring
//
// Not allowed here:
// - page state transitions other than through core.Navigator
// - task store access
package screens
