package data

import (
	_ "embed"
)

//go:embed fixtures/demo.json
var DemoFixtures []byte
