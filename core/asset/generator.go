package asset

// NextTag computes the next tag for a (country, manufacturer) pair from a
// snapshot of existing assets. It is a pure function: callers issuing a
// batch must append each generated asset to the snapshot before the next
// call, or the batch collides with itself.
//
// The sequence is max(existing sequence)+1, or 1 when the pair has no
// assets. Tags whose trailing segment is not numeric still belong to the
// pair but contribute nothing to the maximum.
func NextTag(countryCode, manufacturerCode string, existing []Asset) string {
	next := 1
	for _, ast := range existing {
		if ast.CountryCode != countryCode || ast.ManufacturerCode != manufacturerCode {
			continue
		}
		id, err := ParseTag(ast.Tag)
		if err != nil || !id.HasSequence {
			continue
		}
		if id.Sequence >= next {
			next = id.Sequence + 1
		}
	}
	return FormatTag(countryCode, manufacturerCode, next)
}
