package catapi

// Weight is the remote service's weight range for a breed.
type Weight struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

// Breed mirrors the remote service's breed document. Trait scores are on a
// 1-5 scale; the remaining numeric fields are 0/1 flags. Values are whatever
// the server returns; the client performs no validation.
type Breed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	CountryCode string `json:"country_code"`
	Description string `json:"description"`
	Temperament string `json:"temperament"`
	LifeSpan    string `json:"life_span"`
	AltNames    string `json:"alt_names"`
	Weight      Weight `json:"weight"`

	Adaptability     int `json:"adaptability"`
	AffectionLevel   int `json:"affection_level"`
	ChildFriendly    int `json:"child_friendly"`
	DogFriendly      int `json:"dog_friendly"`
	EnergyLevel      int `json:"energy_level"`
	Grooming         int `json:"grooming"`
	HealthIssues     int `json:"health_issues"`
	Intelligence     int `json:"intelligence"`
	SheddingLevel    int `json:"shedding_level"`
	SocialNeeds      int `json:"social_needs"`
	StrangerFriendly int `json:"stranger_friendly"`
	Vocalisation     int `json:"vocalisation"`

	Indoor         int `json:"indoor"`
	Lap            int `json:"lap"`
	Experimental   int `json:"experimental"`
	Hairless       int `json:"hairless"`
	Natural        int `json:"natural"`
	Rare           int `json:"rare"`
	Rex            int `json:"rex"`
	SuppressedTail int `json:"suppressed_tail"`
	ShortLegs      int `json:"short_legs"`
	Hypoallergenic int `json:"hypoallergenic"`

	WikipediaURL     string `json:"wikipedia_url"`
	ReferenceImageID string `json:"reference_image_id"`
}

// imageRecord is the subset of the image search response the client reads.
type imageRecord struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
