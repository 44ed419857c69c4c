package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte
