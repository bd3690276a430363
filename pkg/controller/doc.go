// Package controller holds the front-end logic of careermap independent of
// any particular user interface. The terminal UI drives it; a web or
// desktop front-end could drive it the same way.
//
// It owns:
//   - [State]: the current roadmap, swapped whole and never patched
//   - [Suggester]: autocomplete with keyboard focus; responses to anything
//     but the latest query are discarded
//   - [Tabs] and [Modal]: which view is showing and the per-skill course
//     list
//   - [Notifier]: a single transient message that expires on its own
//   - [Busy]: per-action guards that are always released
//
// [Controller] ties these together with a [Backend] (the service client or
// the local catalog), a progress store and a PDF renderer.
package controller
