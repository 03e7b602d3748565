package command

import "strings"

// FunctionMarker separates an alias name from the function it triggers,
// as in "spawn -f home".
const FunctionMarker = "-f"

// Alias is an alternate command name, optionally bound to a function.
type Alias struct {
	Name     string
	Function string
}

func (a Alias) HasFunction() bool { return a.Function != "" }

// ParseAlias turns a raw alias token into an Alias. Tokens without the
// function marker become a plain, lower-cased alias.
func ParseAlias(raw string) Alias {
	idx := strings.Index(raw, FunctionMarker)
	if idx < 0 {
		return Alias{Name: strings.ToLower(strings.TrimSpace(raw))}
	}

	name := strings.ToLower(strings.TrimSpace(raw[:idx]))
	function := strings.TrimSpace(raw[idx+len(FunctionMarker):])
	if name == "" {
		name = strings.ToLower(function)
	}
	return Alias{Name: name, Function: function}
}

// parseAliases returns the ordered alias names and the map of aliases that
// carry a function. With stopAtPlain the list is abandoned right after the
// first plain alias, matching the legacy behaviour.
func parseAliases(raw []string, stopAtPlain bool) ([]string, map[string]Alias) {
	names := make([]string, 0, len(raw))
	var functions map[string]Alias

	for _, token := range raw {
		alias := ParseAlias(token)
		if alias.Name == "" {
			continue
		}
		names = append(names, alias.Name)
		if !alias.HasFunction() {
			if stopAtPlain {
				break
			}
			continue
		}
		if functions == nil {
			functions = make(map[string]Alias)
		}
		functions[alias.Name] = alias
	}

	return names, functions
}
