// Package all imports every available sportsbook parser for side-effect
// registration.
//
// Import this package from your main to ensure all parsers are registered:
//
//	import _ "github.com/bkozlov/betsheet/internal/parser/parsers/all"
package all

import (
	_ "github.com/bkozlov/betsheet/internal/parser/parsers/fanduel"
)
