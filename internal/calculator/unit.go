package calculator

import (
	"fmt"
	"strings"
)

// Unit is the unit a sensitivity rating is expressed in
type Unit string

const (
	// DBPerMW is SPL produced by 1 milliwatt
	DBPerMW Unit = "dB/mW"
	// DBPerV is SPL produced by 1 volt
	DBPerV Unit = "dB/V"
)

// Units lists the supported sensitivity units in display order
var Units = []Unit{DBPerMW, DBPerV}

// ParseUnit accepts "dB/mW", "dB/V" and the short forms "dbmw", "dbv" in any case
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "db/mw", "dbmw":
		return DBPerMW, nil
	case "db/v", "dbv":
		return DBPerV, nil
	default:
		return "", fmt.Errorf("%w: unknown sensitivity unit %q (supported: dB/mW, dB/V)", ErrInvalidInput, s)
	}
}

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	return u == DBPerMW || u == DBPerV
}

func (u Unit) String() string {
	return string(u)
}
