package products

// CategoryCodes is the fixed taxonomy, highest efficiency tier first.
var CategoryCodes = []string{"AAA", "AA", "A", "B", "C", "D", "E", "F", "G", "H"}

var categoryRank = func() map[string]int {
	m := make(map[string]int, len(CategoryCodes))
	for i, c := range CategoryCodes {
		m[c] = i
	}
	return m
}()

// CategoryRank returns the position of code in the taxonomy (0 = AAA) and
// whether the code is known at all.
func CategoryRank(code string) (int, bool) {
	r, ok := categoryRank[code]
	return r, ok
}

func ValidCategoryCode(code string) bool {
	_, ok := categoryRank[code]
	return ok
}
