//go:build !(js && wasm)

package main

import (
	"github.com/pkg/profile"
)

func ProfileStart() func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
}
