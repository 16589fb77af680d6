// Package zonemap holds the transient Windows-to-IANA zone association built
// once per generator run.
//
// Key properties:
//   - One entry per Windows zone name; later writes replace earlier ones
//   - Sorted views use byte-wise ordering so generated tables can be
//     binary searched
//   - Column views keep the two name lists positionally aligned
package zonemap
