package catalog

// colorNames maps the legacy single-digit color encoding to a color name.
var colorNames = []string{
	"BLACK", "WHITE", "BROWN", "GREEN", "BLUE",
	"PURPLE", "RED", "YELLOW", "ORANGE", "PINK", "NAVY",
}

// NormalizeColor rewrites a legacy numeric color token as
// "<name>.<token>" and returns the rewritten color together with the
// numeric prefix. Tokens that do not start with a digit pass through
// unchanged with an empty prefix.
func NormalizeColor(color string) (name, numeric string) {
	if color == "" {
		return "", ""
	}
	d := color[0]
	if d < '0' || d > '9' {
		return color, ""
	}
	return colorNames[d-'0'] + "." + color, string(d)
}

// Currency renders a stored price string with exactly two fraction
// digits: "80" becomes "80.00" and "80.5" becomes "80.50".
func Currency(price string) string {
	if price == "" {
		return price
	}
	dot := -1
	for i := 0; i < len(price); i++ {
		if price[i] == '.' {
			dot = i
		}
	}
	if dot < 0 {
		return price + ".00"
	}
	if len(price)-dot-1 == 1 {
		return price + "0"
	}
	return price
}
