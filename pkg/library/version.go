// Package library holds project-wide constants.
package library

// Version is the release version of the library module and CLI.
const Version = "0.1.0"
