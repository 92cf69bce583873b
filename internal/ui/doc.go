// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI walks the tutorial's four sections:
//  1. [IntroView] : Overview and overall progress
//  2. [LessonsView] : Expandable lessons with progress tracking
//  3. [ExercisesView] : Answer exercises and trigger artist discovery
//  4. [ResultsView] : Score summary, tier title, and discovered artist cards
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Discovery progress flows through a channel from the DiscoveryEngine, providing non-blocking status reporting.
//
// Keyboard navigation uses vim-style bindings (j/k, space, enter, tab, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
