package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Show renders "<name> / <units> : <value> +/- <error>" with both numbers in
// scientific notation at the measurement's significant figures.
func (m Measurement) Show() string {
	sf := m.SigFigs()
	return fmt.Sprintf("%s / %s : %s +/- %s",
		m.Name(), m.UnitsText(), FormatSci(m.value, sf), FormatSci(m.err, sf))
}

// String implements fmt.Stringer.
func (m Measurement) String() string {
	return m.Show()
}

// FormatSci renders num as "<mantissa>E<exponent>" with sigfig significant figures.
//
// The mantissa is truncated, not rounded: FormatSci(1239, 3) is "1.23E3". Zero
// renders as "0." followed by sigfig-1 zeros. A leading minus sign is not counted
// against sigfig.
func FormatSci(num float64, sigfig int) string {
	if sigfig < 1 {
		sigfig = 1
	}
	if num == 0 {
		return "0." + strings.Repeat("0", sigfig-1)
	}
	if !finite(num) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}

	sign := ""
	if num < 0 {
		sign, num = "-", -num
	}

	// Log10 loses accuracy on subnormals; lift tiny inputs into the normal range.
	shift := 0
	if num < 1e-290 {
		num, shift = num*1e300, -300
	}

	n := int(math.Floor(math.Log10(num)))
	mant := num / math.Pow(10, float64(n))
	for mant >= 10 {
		mant, n = mant/10, n+1
	}
	for mant < 1 {
		mant, n = mant*10, n-1
	}
	n += shift

	decimals := max(6, sigfig)
	digits := strconv.FormatFloat(mant, 'f', decimals, 64)
	if strings.HasPrefix(digits, "10") {
		n++
		digits = strconv.FormatFloat(mant/10, 'f', decimals, 64)
	}

	return sign + digits[:sigfig+1] + "E" + strconv.Itoa(n)
}
