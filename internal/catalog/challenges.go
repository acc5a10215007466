package catalog

import "github.com/julianstephens/stillness/internal/models"

// challenges is the canonical challenge catalog. IDs must stay stable because
// completed-session history references them.
var challenges = []models.Challenge{
	{
		ID:          "micro-1",
		Title:       "Commute Without Devices",
		Description: "Travel to your destination without checking your phone or listening to anything",
		Duration:    5,
		Icon:        "🚶",
		Tips: []string{
			"Observe your surroundings - notice details you usually miss",
			"Let your mind wander to whatever comes up naturally",
			"Notice the urge to check your phone without acting on it",
		},
		UnlockLevel: 1,
		Tier:        models.TierMicro,
	},
	{
		ID:          "micro-2",
		Title:       "Waiting in Line Phone-Free",
		Description: "Stand in line without pulling out your phone",
		Duration:    10,
		Icon:        "⏳",
		Tips: []string{
			"Observe the people around you without staring",
			"Practice being present in the moment",
			"Notice what thoughts emerge when you're not distracted",
		},
		UnlockLevel: 1,
		Tier:        models.TierMicro,
	},
	{
		ID:          "micro-3",
		Title:       "Morning Coffee in Silence",
		Description: "Enjoy your morning beverage without any devices or reading material",
		Duration:    8,
		Icon:        "☕",
		Tips: []string{
			"Focus on the taste and temperature of your drink",
			"Look out a window and let your mind drift",
			"Notice how silence feels - comfortable or uncomfortable?",
		},
		UnlockLevel: 1,
		Tier:        models.TierMicro,
	},
	{
		ID:          "meso-1",
		Title:       "Workout Without Music",
		Description: "Exercise without any audio entertainment",
		Duration:    20,
		Icon:        "🏋️",
		Tips: []string{
			"Focus on your breathing and body sensations",
			"Let your mind wander while your body moves",
			"Notice what creative ideas emerge during movement",
		},
		UnlockLevel: 2,
		Tier:        models.TierMeso,
	},
	{
		ID:          "meso-2",
		Title:       "Walk Without Headphones",
		Description: "Take a walk with just your thoughts",
		Duration:    15,
		Icon:        "🚶‍♀️",
		Tips: []string{
			"Listen to the ambient sounds around you",
			"Let your thoughts flow without direction",
			"Pay attention to any insights about your life",
		},
		UnlockLevel: 2,
		Tier:        models.TierMeso,
	},
	{
		ID:          "meso-3",
		Title:       "Sit in Nature",
		Description: "Find a park or outdoor space and simply sit",
		Duration:    30,
		Icon:        "🌳",
		Tips: []string{
			"Watch clouds, trees, or water without purpose",
			"Allow yourself to feel bored - it's part of the process",
			"Big questions about meaning often arise in nature",
		},
		UnlockLevel: 2,
		Tier:        models.TierMeso,
	},
	{
		ID:          "macro-1",
		Title:       "Device-Free Morning",
		Description: "No screens from waking up until noon",
		Duration:    60,
		Icon:        "🌅",
		Tips: []string{
			"Notice the urge to check news or messages",
			"Use this time for deep thinking about your life",
			"Journal your thoughts if they feel important",
		},
		UnlockLevel: 3,
		Tier:        models.TierMacro,
	},
	{
		ID:          "macro-2",
		Title:       "Evening Without Screens",
		Description: "Arthur Brooks protocol: No devices after 7 PM",
		Duration:    90,
		Icon:        "🌙",
		Tips: []string{
			"Have real conversations or spend time in reflection",
			"Read a physical book if you need activity",
			"This is prime time for meaning-making thoughts",
		},
		UnlockLevel: 3,
		Tier:        models.TierMacro,
	},
	{
		ID:          "macro-3",
		Title:       "Meal Prep in Silence",
		Description: "Prepare food without any entertainment or devices",
		Duration:    45,
		Icon:        "🍳",
		Tips: []string{
			"Focus on the cooking process itself",
			"Let your mind wander to whatever it wants",
			"Notice if you feel creative or solve problems mentally",
		},
		UnlockLevel: 4,
		Tier:        models.TierMacro,
	},
}

// Challenges returns the full challenge catalog in tier order.
func Challenges() []models.Challenge {
	out := make([]models.Challenge, len(challenges))
	copy(out, challenges)
	return out
}

// ChallengesByTier returns the catalog entries for a single tier.
func ChallengesByTier(tier models.Tier) []models.Challenge {
	var out []models.Challenge
	for _, c := range challenges {
		if c.Tier == tier {
			out = append(out, c)
		}
	}
	return out
}

// GetChallenge looks up a challenge by ID.
func GetChallenge(id string) (models.Challenge, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

// Recommended returns the dashboard's recommended set: the first challenge of
// each tier.
func Recommended() []models.Challenge {
	var out []models.Challenge
	for _, tier := range []models.Tier{models.TierMicro, models.TierMeso, models.TierMacro} {
		if tc := ChallengesByTier(tier); len(tc) > 0 {
			out = append(out, tc[0])
		}
	}
	return out
}
