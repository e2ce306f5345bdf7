// Package output delivers a rendered header to its destination in one
// piece: a file is replaced atomically, standard output gets a single write.
package output
