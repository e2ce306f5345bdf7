// Package bits turns genxml documents into surface pitch field descriptors
// and aggregates them across generations.
//
// Pipeline:
//   - Extractor walks a genxml.Document, drops excluded containers, keeps
//     fields named "... Surface Pitch" or "... Surface QPitch" and adds alias
//     copies ("MCS Surface Pitch" is also "Auxiliary Surface Pitch").
//   - Registry indexes every Field by generation and by cross-generation
//     basename, and hands both back in a fixed order for emission.
package bits
