package external

// CensusRows is the census data API payload: an array of string arrays whose first row holds the column names.
type CensusRows [][]string

// Header returns the column names, or nil for an empty payload.
func (r CensusRows) Header() []string {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// Data returns every row after the header.
func (r CensusRows) Data() [][]string {
	if len(r) < 2 {
		return nil
	}
	return r[1:]
}
