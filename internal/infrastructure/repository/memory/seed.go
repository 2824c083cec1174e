package memory

import "github.com/riskibarqy/match-ratings/internal/domain/rating"

// SeedRatingProfiles returns a small pre-rated pool for memory mode so the
// read endpoints have data before any report is processed.
func SeedRatingProfiles() []rating.Profile {
	return []rating.Profile{
		{PlayerID: "100001", Name: "7 Everaldo", Rating: 1632.4, GamesPlayed: 41, Age: 28},
		{PlayerID: "100002", Name: "11 Vargas", Rating: 1588.1, GamesPlayed: 35, Age: 31},
		{PlayerID: "100003", Name: "1 Rafael", Rating: 1540.7, GamesPlayed: 52, Age: 33},
		{PlayerID: "200001", Name: "9 Gabriel Veron", Rating: 1497.9, GamesPlayed: 12, Age: 22},
		{PlayerID: "200002", Name: "10 Matheus Pereira", Rating: 1701.3, GamesPlayed: 48, Age: 29},
		{PlayerID: "200003", Name: "5 Lucas Silva", Rating: 1515.0, GamesPlayed: 27, Age: 32},
	}
}
