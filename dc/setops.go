package dc

// midSplit splits vec at its midpoint, first half then second half,
// mirroring the reference implementation's midSplit (dc_paresy.cpp).
func midSplit(vec []string) (first, second []string) {
	mid := len(vec) / 2
	return vec[:mid], vec[mid:]
}

// selectWords returns the words of vec whose matching filter entry is true;
// selectInverse returns the words whose entry is false. Both mirror the
// reference implementation's select/selectInverse (dc_paresy.cpp).
func selectWords(vec []string, filter []bool) []string {
	var res []string
	for i, w := range vec {
		if filter[i] {
			res = append(res, w)
		}
	}
	return res
}

func selectInverse(vec []string, filter []bool) []string {
	var res []string
	for i, w := range vec {
		if !filter[i] {
			res = append(res, w)
		}
	}
	return res
}

// subtract returns the elements of a not present in b.
func subtract(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, w := range b {
		inB[w] = struct{}{}
	}
	var res []string
	for _, w := range a {
		if _, ok := inB[w]; !ok {
			res = append(res, w)
		}
	}
	return res
}
