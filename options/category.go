package options

// CategoryEnum selects which raw-to-typed coercions the stock loaders
// permit beyond exact-type matches.
type CategoryEnum int

const (
	CategoryTextNumber  CategoryEnum = 1 << iota // string <-> int, float: textual number representation
	CategoryNumericBool                          // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                          // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                             // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                            // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                             // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                          // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                              // float(seconds) <-> time.Duration: numerical (floating-point) duration representation

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // exact-type matches only
)

// Has reports whether every category in c is enabled.
func (e CategoryEnum) Has(c CategoryEnum) bool {
	return e&c == c
}
