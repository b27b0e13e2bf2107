//go:build js && wasm

package main

// ProfileStart does nothing in the browser, there is no file system to
// write a profile to.
func ProfileStart() func() {
	return func() {}
}
