package playink

import "embed"

// EmbeddedAssets contains the files shipped with the engine and written
// under the site base: the base stylesheet for the grid, navbar and cards.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
