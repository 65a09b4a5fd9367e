package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry. Populated by pkg/dialects/*/ init functions.
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Config)
)

// Register registers a dialect under its name and any aliases.
// Called by dialect implementations in their init() functions.
func Register(cfg *Config, aliases ...string) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(cfg.Name)] = cfg
	for _, alias := range aliases {
		dialects[strings.ToLower(alias)] = cfg
	}
}

// Get returns a dialect by name or alias, case-insensitively.
func Get(name string) (*Config, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	cfg, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
	return cfg, nil
}

// List returns all registered dialect names and aliases, sorted.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
