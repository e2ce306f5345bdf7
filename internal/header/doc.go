// Package header renders a bits.Registry as a self-contained C header.
//
// Layout:
//   - license preamble, generated-file warning and include guard
//   - one "#define GENx_<basename> <width>" per field, newest generation
//     first, a blank line after each generation
//   - one static inline accessor per basename, switching on the generation
//     in tenths and returning 0 where the field does not exist
//   - extern "C" and include guard epilogue
//
// Output is deterministic: both passes iterate sorted keys.
package header
