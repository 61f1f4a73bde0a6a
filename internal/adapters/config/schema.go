package config

// Stratafile represents the structure of the strata.yaml configuration file.
type Stratafile struct {
	Version    string            `yaml:"version"`
	CacheRoot  string            `yaml:"cacheRoot"`
	Strictness string            `yaml:"strictness"`
	Options    map[string]string `yaml:"options"`
	Files      []string          `yaml:"files"`
}
