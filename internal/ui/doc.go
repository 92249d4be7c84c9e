// Package ui implements the coursedeck terminal UI with Bubble Tea.
//
// Pieces:
//   - CourseView: the course list with role-dependent actions and the delete flow
//   - ConfirmModal: y/Enter confirms, Esc/n cancels
//   - Toasts: fire-and-forget notifications that expire on their own
//   - ViewStack: navigation history for route screens pushed from the list
//   - KeybindRegistry/KeyHandler: SPC-leader global bindings filtered by session role
//   - AppModel: the root model tying them together
package ui
