package config

import "github.com/idilsaglam/todolist/internal/model"

// Item seeds one todo of the in-memory list.
type Item struct {
	Title string `toml:"title" json:"title"`
	Done  bool   `toml:"done" json:"done"`
}

// Config holds the merged settings.
type Config struct {
	Title    string `toml:"title" json:"title"`
	Theme    string `toml:"theme" json:"theme"`
	Group    bool   `toml:"group" json:"group"`
	LogLevel string `toml:"log_level" json:"log_level"`
	Color    string `toml:"color" json:"color"`
	Items    []Item `toml:"items" json:"items,omitempty"`

	// Files lists the config files that were read, in order.
	Files []string `toml:"-" json:"-"`
}

const (
	DefaultTitle    = "Todos"
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
	DefaultColor    = "auto"
)

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		Title:    DefaultTitle,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
		Items:    []Item{},
	}
}

// NewList builds the in-memory list described by the config.
func (c *Config) NewList() *model.TodoList {
	l := model.NewTodoList(c.Title)
	for _, it := range c.Items {
		t := model.NewTodo(it.Title)
		if it.Done {
			t.MarkDone()
		}
		// never nil, Add cannot fail here
		_ = l.Add(t)
	}
	return l
}
