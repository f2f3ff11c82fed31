package config

// KeyMappings defines the key bindings of the interactive shell
type KeyMappings struct {
	Quit   string `yaml:"quit"`
	Back   string `yaml:"back"`
	Submit string `yaml:"submit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Quit:   "ctrl+c",
		Back:   "esc",
		Submit: "enter",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
}
