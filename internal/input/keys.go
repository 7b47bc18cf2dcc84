package input

import "strconv"

func functionKeyName(n int) string {
	return "f" + strconv.Itoa(n)
}
