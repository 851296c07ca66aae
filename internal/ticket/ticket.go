// Package ticket defines the platform-agnostic ticket record the rendering
// engine consumes. Provider adapters (Linear, and whatever comes next)
// convert their webhook payloads into this shape.
package ticket

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Ticket is a platform-agnostic issue/ticket. Immutable once constructed;
// the rendering engine never mutates it.
type Ticket struct {
	ID          string     `yaml:"id"`
	Identifier  string     `yaml:"identifier"` // e.g. "WEB-17"
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Status      string     `yaml:"status"`
	Priority    string     `yaml:"priority"`
	Assignee    string     `yaml:"assignee,omitempty"`
	Labels      []string   `yaml:"labels,omitempty"`
	CreatedAt   time.Time  `yaml:"createdAt"`
	CreatedBy   string     `yaml:"createdBy"`
	Team        string     `yaml:"team"`
	DueDate     *time.Time `yaml:"dueDate,omitempty"`
	URL         string     `yaml:"url"`
	Project     string     `yaml:"project,omitempty"`
	Milestone   string     `yaml:"milestone,omitempty"`
}

// LoadFile reads a ticket from a YAML file. Used by the preview command
// and test fixtures.
func LoadFile(path string) (*Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ticket file: %w", err)
	}
	var t Ticket
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing ticket file: %w", err)
	}
	if t.Identifier == "" {
		return nil, fmt.Errorf("ticket file missing required 'identifier' field")
	}
	return &t, nil
}
