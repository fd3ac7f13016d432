//go:build debug

package main

// debugBuild enables diagnostic output and the final-result assertion.
// Build with -tags debug to turn it on.
const debugBuild = true
