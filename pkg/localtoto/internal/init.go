// Package internal holds the SDL side of the shell: window and renderer,
// fonts, text and icon textures, input mapping and logging. Nothing here
// knows about screens or navigation.
package internal
