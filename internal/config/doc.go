// Package config loads the optional YAML run configuration.
//
// Everything in the file extends the built-in behaviour; the streamout
// exclusion and the MCS alias always apply.
package config
