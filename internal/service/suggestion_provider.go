package service

import (
	"context"

	"github.com/google/uuid"

	"skygrouper/tripapi/internal/model"
)

// SuggestionProvider supplies the destination candidates offered to a
// group. The lifecycle controller depends only on this interface so a real
// recommendation engine can replace the static catalog.
type SuggestionProvider interface {
	Suggestions(ctx context.Context) ([]model.Candidate, error)
}

type staticSuggestionProvider struct {
	catalog []model.Candidate
}

// NewStaticSuggestionProvider returns a provider serving the built-in
// destination catalog. Candidate ids are generated once at construction so
// they stay stable between the suggestions and results calls of a session.
func NewStaticSuggestionProvider() SuggestionProvider {
	catalog := make([]model.Candidate, len(staticDestinations))
	copy(catalog, staticDestinations)
	for i := range catalog {
		catalog[i].ID = uuid.NewString()
	}
	return &staticSuggestionProvider{catalog: catalog}
}

func (p *staticSuggestionProvider) Suggestions(_ context.Context) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, len(p.catalog))
	copy(candidates, p.catalog)
	return candidates, nil
}

var staticDestinations = []model.Candidate{
	{
		Name:        "Barcelona, Spain",
		Image:       "https://images.pexels.com/photos/819764/pexels-photo-819764.jpeg",
		Description: "A vibrant city with stunning architecture, beautiful beaches, and amazing food.",
		Interests:   []string{"Culture", "Beach", "Nightlife", "Food"},
		Price:       "€€",
	},
	{
		Name:        "Paris, France",
		Image:       "https://images.pexels.com/photos/699466/pexels-photo-699466.jpeg",
		Description: "The city of love with iconic landmarks, world-class museums, and exquisite cuisine.",
		Interests:   []string{"Culture", "History", "Food"},
		Price:       "€€€",
	},
	{
		Name:        "Rome, Italy",
		Image:       "https://images.pexels.com/photos/1797161/pexels-photo-1797161.jpeg",
		Description: "Explore ancient ruins, enjoy delicious Italian food, and experience the vibrant atmosphere.",
		Interests:   []string{"History", "Culture", "Food"},
		Price:       "€€",
	},
	{
		Name:        "Amsterdam, Netherlands",
		Image:       "https://images.pexels.com/photos/967292/pexels-photo-967292.jpeg",
		Description: "Picturesque canals, historic buildings, museums, and a laid-back atmosphere.",
		Interests:   []string{"Culture", "Nightlife", "History"},
		Price:       "€€",
	},
	{
		Name:        "Prague, Czech Republic",
		Image:       "https://images.pexels.com/photos/125137/pexels-photo-125137.jpeg",
		Description: "Stunning architecture, rich history, affordable prices, and great beer.",
		Interests:   []string{"History", "Culture", "Nightlife"},
		Price:       "€",
	},
	{
		Name:        "Berlin, Germany",
		Image:       "https://images.pexels.com/photos/2064827/pexels-photo-2064827.jpeg",
		Description: "A city with a rich history, vibrant arts scene, and legendary nightlife.",
		Interests:   []string{"History", "Nightlife", "Culture"},
		Price:       "€€",
	},
	{
		Name:        "Lisbon, Portugal",
		Image:       "https://images.pexels.com/photos/1534560/pexels-photo-1534560.jpeg",
		Description: "Charming streets, historic buildings, beautiful viewpoints, and delicious food.",
		Interests:   []string{"Culture", "Food", "History"},
		Price:       "€",
	},
	{
		Name:        "Vienna, Austria",
		Image:       "https://images.pexels.com/photos/2058911/pexels-photo-2058911.jpeg",
		Description: "Impressive imperial palaces, magnificent museums, and classical music heritage.",
		Interests:   []string{"Culture", "History", "Food"},
		Price:       "€€",
	},
	{
		Name:        "London, UK",
		Image:       "https://images.pexels.com/photos/460672/pexels-photo-460672.jpeg",
		Description: "World-class museums, iconic landmarks, diverse food scene, and vibrant cultural life.",
		Interests:   []string{"Culture", "History", "Shopping"},
		Price:       "€€€",
	},
	{
		Name:        "Budapest, Hungary",
		Image:       "https://images.pexels.com/photos/1115804/pexels-photo-1115804.jpeg",
		Description: "Stunning architecture, thermal baths, vibrant nightlife, and affordable prices.",
		Interests:   []string{"History", "Nightlife", "Culture"},
		Price:       "€",
	},
}
