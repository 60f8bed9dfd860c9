package analysis

// masZoneDefinitions are contiguous bands from 55% to 105% of MAS
var masZoneDefinitions = []ZoneDefinition{
	{ID: "1", Name: "Recovery", Description: "Very easy running, active recovery", MinPercent: 55, MaxPercent: 65, Color: "#60a5fa"},
	{ID: "2", Name: "Endurance", Description: "Aerobic base building, conversational pace", MinPercent: 65, MaxPercent: 75, Color: "#34d399"},
	{ID: "3", Name: "Tempo", Description: "Sustained steady effort, marathon to half pace", MinPercent: 75, MaxPercent: 85, Color: "#fbbf24"},
	{ID: "4", Name: "Threshold", Description: "Lactate threshold, comfortably hard", MinPercent: 85, MaxPercent: 95, Color: "#f97316"},
	{ID: "5", Name: "VO2max", Description: "Short intervals at or above MAS", MinPercent: 95, MaxPercent: 105, Color: "#ef4444"},
}

// danielsZoneDefinitions are the E/M/T/I/R intensities as % of MAS.
// M and T share 83-84%: the published intensity table overlaps there.
var danielsZoneDefinitions = []ZoneDefinition{
	{ID: "E", Name: "Easy", Description: "Easy and long runs, recovery", MinPercent: 59, MaxPercent: 74, Color: "#60a5fa"},
	{ID: "M", Name: "Marathon", Description: "Marathon race pace", MinPercent: 75, MaxPercent: 84, Color: "#34d399"},
	{ID: "T", Name: "Threshold", Description: "Tempo runs and cruise intervals", MinPercent: 83, MaxPercent: 88, Color: "#fbbf24"},
	{ID: "I", Name: "Interval", Description: "3-5 minute repeats at VO2max", MinPercent: 95, MaxPercent: 100, Color: "#f97316"},
	{ID: "R", Name: "Repetition", Description: "Short fast repeats for speed and economy", MinPercent: 105, MaxPercent: 120, Color: "#ef4444"},
}

// heartRateZoneDefinitions are Karvonen bands as % of heart rate reserve
var heartRateZoneDefinitions = []ZoneDefinition{
	{ID: "1", Name: "Recovery", Description: "Warm-up, cool-down, recovery", MinPercent: 50, MaxPercent: 60, Color: "#60a5fa"},
	{ID: "2", Name: "Aerobic base", Description: "Long easy runs", MinPercent: 60, MaxPercent: 70, Color: "#34d399"},
	{ID: "3", Name: "Tempo", Description: "Moderate sustained effort", MinPercent: 70, MaxPercent: 80, Color: "#fbbf24"},
	{ID: "4", Name: "Threshold", Description: "Hard, near lactate threshold", MinPercent: 80, MaxPercent: 90, Color: "#f97316"},
	{ID: "5", Name: "VO2max", Description: "Maximal efforts, short intervals", MinPercent: 90, MaxPercent: 100, Color: "#ef4444"},
}

var rpeZoneDefinitions = []ZoneDefinition{
	{ID: "1", Level: 1, Name: "Very light", Description: "Barely any effort", Color: "#93c5fd"},
	{ID: "2", Level: 2, Name: "Light", Description: "Easy breathing, could go for hours", Color: "#60a5fa"},
	{ID: "3", Level: 3, Name: "Light", Description: "Comfortable, full conversation", Color: "#34d399"},
	{ID: "4", Level: 4, Name: "Moderate", Description: "Breathing deeper, still talking", Color: "#6ee7b7"},
	{ID: "5", Level: 5, Name: "Moderate", Description: "Steady, sentences get shorter", Color: "#fbbf24"},
	{ID: "6", Level: 6, Name: "Somewhat hard", Description: "A few words at a time", Color: "#f59e0b"},
	{ID: "7", Level: 7, Name: "Hard", Description: "Uncomfortable, focused effort", Color: "#fb923c"},
	{ID: "8", Level: 8, Name: "Very hard", Description: "Only a word or two", Color: "#f97316"},
	{ID: "9", Level: 9, Name: "Extremely hard", Description: "Can barely sustain", Color: "#ef4444"},
	{ID: "10", Level: 10, Name: "Maximal", Description: "All-out, cannot continue", Color: "#dc2626"},
}

var borgZoneDefinitions = []ZoneDefinition{
	{ID: "6", Level: 6, Name: "No exertion", Description: "Resting", Color: "#bfdbfe"},
	{ID: "7", Level: 7, Name: "Extremely light", Description: "Hardly noticeable", Color: "#93c5fd"},
	{ID: "8", Level: 8, Name: "Extremely light", Description: "Very gentle movement", Color: "#7dd3fc"},
	{ID: "9", Level: 9, Name: "Very light", Description: "Easy walking", Color: "#60a5fa"},
	{ID: "10", Level: 10, Name: "Very light", Description: "Brisk walking", Color: "#4ade80"},
	{ID: "11", Level: 11, Name: "Light", Description: "Easy jog", Color: "#34d399"},
	{ID: "12", Level: 12, Name: "Light", Description: "Comfortable running", Color: "#a3e635"},
	{ID: "13", Level: 13, Name: "Somewhat hard", Description: "Steady, still manageable", Color: "#fbbf24"},
	{ID: "14", Level: 14, Name: "Somewhat hard", Description: "Tempo effort", Color: "#f59e0b"},
	{ID: "15", Level: 15, Name: "Hard", Description: "Threshold effort", Color: "#fb923c"},
	{ID: "16", Level: 16, Name: "Hard", Description: "Sustained hard running", Color: "#f97316"},
	{ID: "17", Level: 17, Name: "Very hard", Description: "Interval effort", Color: "#ef4444"},
	{ID: "18", Level: 18, Name: "Very hard", Description: "Near race-finish effort", Color: "#dc2626"},
	{ID: "19", Level: 19, Name: "Extremely hard", Description: "Close to exhaustion", Color: "#b91c1c"},
	{ID: "20", Level: 20, Name: "Maximal exertion", Description: "Absolute maximum", Color: "#7f1d1d"},
}
