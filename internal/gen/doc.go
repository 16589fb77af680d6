// Package gen renders a zone mapping into a generated source file holding two
// parallel static arrays: Windows zone names and their IANA identifiers.
//
// Generation approach uses text/template, with go/format applied to Go
// output, and writes the result with a single overwrite.
//
// Output guarantees:
//   - Windows names ascend in byte order, so consumers may binary search
//   - Index i of both arrays belongs to the same entry
//   - The header carries an "autogenerated, do not edit" notice and a UTC
//     generation timestamp
package gen
