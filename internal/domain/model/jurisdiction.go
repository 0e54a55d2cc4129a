package model

import (
	"fmt"
	"slices"
	"strconv"
)

// Jurisdiction is a U.S. state-level region identified by its FIPS code.
type Jurisdiction struct {
	Code         int    `json:"code"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// FIPS returns the zero-padded two-digit code used by the census API.
func (j Jurisdiction) FIPS() string {
	return fmt.Sprintf("%02d", j.Code)
}

// Jurisdictions lists the 50 states and the District of Columbia in ascending FIPS order.
// Codes 3, 7, 14, 43 and 52 are not assigned to a state.
var Jurisdictions = []Jurisdiction{
	{1, "AL", "Alabama"},
	{2, "AK", "Alaska"},
	{4, "AZ", "Arizona"},
	{5, "AR", "Arkansas"},
	{6, "CA", "California"},
	{8, "CO", "Colorado"},
	{9, "CT", "Connecticut"},
	{10, "DE", "Delaware"},
	{11, "DC", "District of Columbia"},
	{12, "FL", "Florida"},
	{13, "GA", "Georgia"},
	{15, "HI", "Hawaii"},
	{16, "ID", "Idaho"},
	{17, "IL", "Illinois"},
	{18, "IN", "Indiana"},
	{19, "IA", "Iowa"},
	{20, "KS", "Kansas"},
	{21, "KY", "Kentucky"},
	{22, "LA", "Louisiana"},
	{23, "ME", "Maine"},
	{24, "MD", "Maryland"},
	{25, "MA", "Massachusetts"},
	{26, "MI", "Michigan"},
	{27, "MN", "Minnesota"},
	{28, "MS", "Mississippi"},
	{29, "MO", "Missouri"},
	{30, "MT", "Montana"},
	{31, "NE", "Nebraska"},
	{32, "NV", "Nevada"},
	{33, "NH", "New Hampshire"},
	{34, "NJ", "New Jersey"},
	{35, "NM", "New Mexico"},
	{36, "NY", "New York"},
	{37, "NC", "North Carolina"},
	{38, "ND", "North Dakota"},
	{39, "OH", "Ohio"},
	{40, "OK", "Oklahoma"},
	{41, "OR", "Oregon"},
	{42, "PA", "Pennsylvania"},
	{44, "RI", "Rhode Island"},
	{45, "SC", "South Carolina"},
	{46, "SD", "South Dakota"},
	{47, "TN", "Tennessee"},
	{48, "TX", "Texas"},
	{49, "UT", "Utah"},
	{50, "VT", "Vermont"},
	{51, "VA", "Virginia"},
	{53, "WA", "Washington"},
	{54, "WV", "West Virginia"},
	{55, "WI", "Wisconsin"},
	{56, "WY", "Wyoming"},
}

// FindJurisdiction looks up a jurisdiction by FIPS code, accepting "6" as well as "06".
func FindJurisdiction(code string) (Jurisdiction, bool) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return Jurisdiction{}, false
	}
	i, found := slices.BinarySearchFunc(Jurisdictions, n, func(j Jurisdiction, target int) int {
		return j.Code - target
	})
	if !found {
		return Jurisdiction{}, false
	}
	return Jurisdictions[i], true
}
