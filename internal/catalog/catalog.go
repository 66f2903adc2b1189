// Package catalog holds the static course structure: an ordered list of
// modules, each with an ordered list of lessons. The catalog never changes
// at runtime; lesson content itself is generated on demand elsewhere.
package catalog

import (
	"FlowAcademy/internal/models"
)

type Catalog struct {
	modules []models.Module
	byID    map[string]models.Lesson
}

func New() *Catalog {
	c := &Catalog{
		modules: courseModules,
		byID:    make(map[string]models.Lesson),
	}
	for _, m := range c.modules {
		for _, l := range m.Lessons {
			c.byID[l.ID] = l
		}
	}
	return c
}

// Modules returns the full ordered course structure.
func (c *Catalog) Modules() []models.Module {
	return c.modules
}

// LessonByID looks up a lesson by its stable id.
func (c *Catalog) LessonByID(id string) (models.Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}
