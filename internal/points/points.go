// Package points holds the scoring policy for achievements.
package points

import "github.com/yukikurage/jetistik-hub/internal/models"

var table = map[models.Level]map[models.Place]int{
	models.LevelCity: {
		models.PlaceFirst: 35, models.PlaceSecond: 30, models.PlaceThird: 25, models.PlaceCertificate: 10,
	},
	models.LevelRegional: {
		models.PlaceFirst: 40, models.PlaceSecond: 35, models.PlaceThird: 30, models.PlaceCertificate: 15,
	},
	models.LevelNational: {
		models.PlaceFirst: 45, models.PlaceSecond: 40, models.PlaceThird: 35, models.PlaceCertificate: 20,
	},
	models.LevelInternational: {
		models.PlaceFirst: 50, models.PlaceSecond: 45, models.PlaceThird: 40, models.PlaceCertificate: 25,
	},
}

// For returns the points awarded for a level and place. Unknown pairs score 0.
func For(level models.Level, place models.Place) int {
	return table[level][place]
}

// Total sums the points of approved achievements.
func Total(achievements []models.Achievement) int {
	sum := 0
	for _, a := range achievements {
		if a.Status == models.StatusApproved {
			sum += a.Points
		}
	}
	return sum
}
