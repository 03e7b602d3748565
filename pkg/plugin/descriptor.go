// Package plugin reads plugin.yml descriptors and turns their command
// declarations into command trees registered with a host CommandMap.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDescriptor = errors.New("invalid plugin descriptor")

var validName = regexp.MustCompile(`^[A-Za-z0-9 _.-]+$`)

// Descriptor is the content of plugin.yml.
type Descriptor struct {
	Name        string                       `yaml:"name"`
	Version     string                       `yaml:"version"`
	Main        string                       `yaml:"main"`
	Description string                       `yaml:"description,omitempty"`
	Authors     []string                     `yaml:"authors,omitempty"`
	APIVersion  string                       `yaml:"api-version,omitempty"`
	Commands    map[string]CommandDescriptor `yaml:"commands,omitempty"`
	Order       []string                     `yaml:"-"`
}

// CommandDescriptor declares one command. Aliases accept either a single
// string or a list, like the server's own format.
type CommandDescriptor struct {
	Description string          `yaml:"description,omitempty"`
	Usage       string          `yaml:"usage,omitempty"`
	Aliases     StringList      `yaml:"aliases,omitempty"`
	Permission  string          `yaml:"permission,omitempty"`
	SubCommands []SubDescriptor `yaml:"subcommands,omitempty"`
}

// SubDescriptor is a named CommandDescriptor inside a subcommands list,
// which keeps declaration order.
type SubDescriptor struct {
	Name              string `yaml:"name"`
	CommandDescriptor `yaml:",inline"`
}

// StringList decodes a scalar or a sequence of scalars.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// LoadDescriptor reads and validates a plugin.yml file.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return ParseDescriptor(data)
}

// ParseDescriptor decodes and validates plugin.yml content. Order records
// the commands in the order they appear in the file.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	var d Descriptor
	if err := root.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	d.Order = commandOrder(&root)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func commandOrder(root *yaml.Node) []string {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "commands" || doc.Content[i+1].Kind != yaml.MappingNode {
			continue
		}
		cmds := doc.Content[i+1].Content
		order := make([]string, 0, len(cmds)/2)
		for j := 0; j < len(cmds); j += 2 {
			order = append(order, cmds[j].Value)
		}
		return order
	}
	return nil
}

// Validate checks the required fields and the version format.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDescriptor)
	}
	if !validName.MatchString(d.Name) {
		return fmt.Errorf("%w: name %q contains invalid characters", ErrInvalidDescriptor, d.Name)
	}
	if d.Version == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidDescriptor)
	}
	if _, err := semver.NewVersion(d.Version); err != nil {
		return fmt.Errorf("%w: version %q: %v", ErrInvalidDescriptor, d.Version, err)
	}
	if d.APIVersion != "" {
		if _, err := semver.NewVersion(d.APIVersion); err != nil {
			return fmt.Errorf("%w: api-version %q: %v", ErrInvalidDescriptor, d.APIVersion, err)
		}
	}
	for name, c := range d.Commands {
		if err := c.validate(name); err != nil {
			return err
		}
	}
	return nil
}

func (c CommandDescriptor) validate(path string) error {
	for _, sub := range c.SubCommands {
		if sub.Name == "" {
			return fmt.Errorf("%w: sub-command of %s has no name", ErrInvalidDescriptor, path)
		}
		if err := sub.validate(path + " " + sub.Name); err != nil {
			return err
		}
	}
	return nil
}

// ParsedVersion returns the semantic version; Validate guarantees it parses.
func (d *Descriptor) ParsedVersion() *semver.Version {
	v, err := semver.NewVersion(d.Version)
	if err != nil {
		return nil
	}
	return v
}

// Supports reports whether the plugin's api-version satisfies constraint,
// e.g. ">= 1.13". Plugins without an api-version are legacy and never match.
func (d *Descriptor) Supports(constraint string) (bool, error) {
	if d.APIVersion == "" {
		return false, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(d.APIVersion)
	if err != nil {
		return false, fmt.Errorf("%w: api-version %q: %v", ErrInvalidDescriptor, d.APIVersion, err)
	}
	return c.Check(v), nil
}
