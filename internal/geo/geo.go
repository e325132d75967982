// Package geo carries the static location reference data the personal-info
// form validates against: Indian states and union territories with their
// districts, and international dialling codes.
package geo

import "strings"

// State is one Indian state or union territory with its district list.
// District membership is checked in code, not by a database constraint.
type State struct {
	Name      string   `json:"name"`
	NameHI    string   `json:"name_hi"`
	Districts []string `json:"districts"`
}

// States returns the full state/UT list in alphabetical order.
func States() []State { return states }

// FindState resolves a state by name, ignoring case and surrounding spaces.
func FindState(name string) (*State, bool) {
	needle := strings.TrimSpace(name)
	for i := range states {
		if strings.EqualFold(states[i].Name, needle) {
			return &states[i], true
		}
	}
	return nil, false
}

// FindDistrict resolves a district of the named state to its canonical
// spelling, ignoring case and surrounding spaces.
func FindDistrict(state, district string) (string, bool) {
	st, ok := FindState(state)
	if !ok {
		return "", false
	}
	needle := strings.TrimSpace(district)
	for _, d := range st.Districts {
		if strings.EqualFold(d, needle) {
			return d, true
		}
	}
	return "", false
}

// ValidDistrict reports whether district belongs to the named state.
func ValidDistrict(state, district string) bool {
	_, ok := FindDistrict(state, district)
	return ok
}

// DialCode is one entry of the dialling-code dropdown.
type DialCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

// DefaultDialCode is preselected in the form.
const DefaultDialCode = "+91"

// DialCodes returns the served dialling-code list, India first.
func DialCodes() []DialCode { return dialCodes }

// ValidDialCode accepts a leading plus followed by one to four digits.
// The served list is a convenience for the UI, not a closed set.
func ValidDialCode(code string) bool {
	c := strings.TrimSpace(code)
	if len(c) < 2 || len(c) > 5 || c[0] != '+' {
		return false
	}
	for _, r := range c[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var dialCodes = []DialCode{
	{Code: "+91", Country: "India"},
	{Code: "+1", Country: "United States / Canada"},
	{Code: "+44", Country: "United Kingdom"},
	{Code: "+971", Country: "United Arab Emirates"},
	{Code: "+61", Country: "Australia"},
	{Code: "+880", Country: "Bangladesh"},
	{Code: "+975", Country: "Bhutan"},
	{Code: "+86", Country: "China"},
	{Code: "+33", Country: "France"},
	{Code: "+49", Country: "Germany"},
	{Code: "+62", Country: "Indonesia"},
	{Code: "+39", Country: "Italy"},
	{Code: "+81", Country: "Japan"},
	{Code: "+254", Country: "Kenya"},
	{Code: "+60", Country: "Malaysia"},
	{Code: "+960", Country: "Maldives"},
	{Code: "+230", Country: "Mauritius"},
	{Code: "+95", Country: "Myanmar"},
	{Code: "+977", Country: "Nepal"},
	{Code: "+31", Country: "Netherlands"},
	{Code: "+64", Country: "New Zealand"},
	{Code: "+234", Country: "Nigeria"},
	{Code: "+968", Country: "Oman"},
	{Code: "+92", Country: "Pakistan"},
	{Code: "+63", Country: "Philippines"},
	{Code: "+974", Country: "Qatar"},
	{Code: "+7", Country: "Russia"},
	{Code: "+966", Country: "Saudi Arabia"},
	{Code: "+65", Country: "Singapore"},
	{Code: "+27", Country: "South Africa"},
	{Code: "+34", Country: "Spain"},
	{Code: "+94", Country: "Sri Lanka"},
	{Code: "+66", Country: "Thailand"},
	{Code: "+84", Country: "Vietnam"},
}
