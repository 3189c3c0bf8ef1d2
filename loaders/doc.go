// Package loaders provides stock crown.Loader implementations for
// common scalar targets. Each constructor returns a pure loader; which
// cross-type coercions it accepts is controlled by an options category
// bitmask, so the same constructor covers both strict decoding (exact
// input types only) and lenient decoding of loosely typed trees.
//
// Loader failures are plain errors. The extraction machinery wraps them
// without reinterpreting, so anything produced here surfaces verbatim
// inside a FieldError.
package loaders
