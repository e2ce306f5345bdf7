// Package diagnostic collects findings that do not stop a run: containers
// skipped by the exclusion rules, tokens submitted more than once, and
// configuration problems reported together before a run starts.
package diagnostic
