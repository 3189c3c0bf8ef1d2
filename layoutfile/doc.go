// Package layoutfile loads declarative name layouts from YAML. A layout
// file names the model fields and describes the crown tree binding tree
// positions to those fields; Validate collects every structural problem
// in one pass and Build produces the crown values the extraction
// compiler consumes.
package layoutfile
