// Package config loads todo settings from TOML files and the environment.
//
// Sources, lowest priority first:
//
//  1. Defaults
//  2. User file ($XDG_CONFIG_HOME/todolist/todo.toml or the OS equivalent)
//  3. Project file (todo.toml or .todo.toml in the working directory)
//  4. Environment (TODO_TITLE, TODO_THEME, TODO_LOG_LEVEL, NO_COLOR)
//
// An explicit path replaces steps 2 and 3. Command-line flags are applied
// on top by the caller.
//
// Example:
//
//	title = "Today's Todos"
//	theme = "neon"
//	log_level = "debug"
//
//	[[items]]
//	title = "Buy milk"
//
//	[[items]]
//	title = "Clean room"
//	done = true
//
// Every file, and the merged result, is checked against an embedded JSON
// Schema; unknown keys are rejected.
package config
