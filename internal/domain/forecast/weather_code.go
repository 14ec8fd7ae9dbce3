package forecast

import "sort"

const (
	UnknownIcon        = "unknown"
	UnknownDescription = "Unknown weather condition"
)

// WeatherCodeEntry maps one WMO code to its icon base and description
type WeatherCodeEntry struct {
	Code        int
	IconBase    string
	Description string
}

// WeatherInfo is a resolved icon and description
type WeatherInfo struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var weatherCodes = buildWeatherCodes([]WeatherCodeEntry{
	{0, "01", "Clear sky"},
	{1, "01", "Mainly clear"},
	{2, "02", "Partly cloudy"},
	{3, "04", "Overcast"},
	{45, "50", "Fog"},
	{48, "50", "Depositing rime fog"},
	{51, "09", "Light drizzle"},
	{53, "09", "Moderate drizzle"},
	{55, "09", "Dense drizzle"},
	{56, "13", "Light freezing drizzle"},
	{57, "13", "Dense freezing drizzle"},
	{61, "10", "Slight rain"},
	{63, "10", "Moderate rain"},
	{65, "10", "Heavy rain"},
	{66, "13", "Light freezing rain"},
	{67, "13", "Heavy freezing rain"},
	{71, "13", "Slight snow fall"},
	{73, "13", "Moderate snow fall"},
	{75, "13", "Heavy snow fall"},
	{77, "13", "Snow grains"},
	{80, "09", "Slight rain showers"},
	{81, "09", "Moderate rain showers"},
	{82, "09", "Violent rain showers"},
	{85, "13", "Slight snow showers"},
	{86, "13", "Heavy snow showers"},
	{95, "11", "Thunderstorm"},
	{96, "11", "Thunderstorm with slight hail"},
	{99, "11", "Thunderstorm with heavy hail"},
})

func buildWeatherCodes(entries []WeatherCodeEntry) map[int]WeatherCodeEntry {
	table := make(map[int]WeatherCodeEntry, len(entries))
	for _, entry := range entries {
		if _, exists := table[entry.Code]; exists {
			panic("duplicate weather code")
		}
		table[entry.Code] = entry
	}
	return table
}

// ResolveWeatherCode returns the icon with a day/night suffix and the description for code.
// Unknown codes resolve to the unknown sentinel without a suffix.
func ResolveWeatherCode(code int, isNight bool) WeatherInfo {
	entry, ok := weatherCodes[code]
	if !ok {
		return WeatherInfo{Icon: UnknownIcon, Description: UnknownDescription}
	}

	suffix := "d"
	if isNight {
		suffix = "n"
	}
	return WeatherInfo{Icon: entry.IconBase + suffix, Description: entry.Description}
}

// ResolveOptionalWeatherCode resolves a possibly missing code, nil being unknown
func ResolveOptionalWeatherCode(code *int, isNight bool) WeatherInfo {
	if code == nil {
		return WeatherInfo{Icon: UnknownIcon, Description: UnknownDescription}
	}
	return ResolveWeatherCode(*code, isNight)
}

// WMOCodeToIconName returns only the icon for code
func WMOCodeToIconName(code int, isNight bool) string {
	return ResolveWeatherCode(code, isNight).Icon
}

// WeatherCodes lists the table ordered by code
func WeatherCodes() []WeatherCodeEntry {
	entries := make([]WeatherCodeEntry, 0, len(weatherCodes))
	for _, entry := range weatherCodes {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
