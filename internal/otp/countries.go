package otp

import "strings"

// countryPrefixes maps international calling codes to country names. Entries
// are grouped by region, not sorted by code length, and the first prefix
// match in declaration order wins. Reordering changes matching semantics:
// "7" claims every Kazakh number before the "77" entry further down gets a
// look.
var countryPrefixes = []struct{ code, name string }{
	{"1", "USA/Canada"},
	{"44", "United Kingdom"},
	{"33", "France"},
	{"49", "Germany"},
	{"34", "Spain"},
	{"39", "Italy"},
	{"31", "Netherlands"},
	{"32", "Belgium"},
	{"41", "Switzerland"},
	{"43", "Austria"},
	{"45", "Denmark"},
	{"46", "Sweden"},
	{"47", "Norway"},
	{"48", "Poland"},
	{"30", "Greece"},
	{"351", "Portugal"},
	{"353", "Ireland"},
	{"358", "Finland"},
	{"380", "Ukraine"},
	{"7", "Russia"},
	{"90", "Turkey"},
	{"20", "Egypt"},
	{"212", "Morocco"},
	{"213", "Algeria"},
	{"216", "Tunisia"},
	{"218", "Libya"},
	{"220", "Gambia"},
	{"221", "Senegal"},
	{"233", "Ghana"},
	{"234", "Nigeria"},
	{"254", "Kenya"},
	{"255", "Tanzania"},
	{"256", "Uganda"},
	{"260", "Zambia"},
	{"261", "Madagascar"},
	{"263", "Zimbabwe"},
	{"27", "South Africa"},
	{"91", "India"},
	{"92", "Pakistan"},
	{"880", "Bangladesh"},
	{"94", "Sri Lanka"},
	{"95", "Myanmar"},
	{"977", "Nepal"},
	{"93", "Afghanistan"},
	{"98", "Iran"},
	{"964", "Iraq"},
	{"966", "Saudi Arabia"},
	{"971", "UAE"},
	{"972", "Israel"},
	{"961", "Lebanon"},
	{"962", "Jordan"},
	{"965", "Kuwait"},
	{"974", "Qatar"},
	{"973", "Bahrain"},
	{"968", "Oman"},
	{"86", "China"},
	{"81", "Japan"},
	{"82", "South Korea"},
	{"84", "Vietnam"},
	{"66", "Thailand"},
	{"60", "Malaysia"},
	{"62", "Indonesia"},
	{"63", "Philippines"},
	{"65", "Singapore"},
	{"852", "Hong Kong"},
	{"886", "Taiwan"},
	{"61", "Australia"},
	{"64", "New Zealand"},
	{"55", "Brazil"},
	{"52", "Mexico"},
	{"54", "Argentina"},
	{"56", "Chile"},
	{"57", "Colombia"},
	{"51", "Peru"},
	{"998", "Uzbekistan"},
	{"77", "Kazakhstan"},
}

// CountryFromPrefix maps a number's leading digits to a country name via the
// static calling-code table; "Unknown" when nothing matches.
func CountryFromPrefix(number string) string {
	digits := digitsOnly(number)
	if digits == "" {
		return "Unknown"
	}
	for _, e := range countryPrefixes {
		if strings.HasPrefix(digits, e.code) {
			return e.name
		}
	}
	return "Unknown"
}
