package metadomain

// CampaignPayload corpo de criação de uma campanha Advantage+ Shopping (campanha, conjunto e anúncio)
type CampaignPayload struct {
	Campaign Campaign `json:"campaign"`
	AdSet    AdSet    `json:"adSet"`
	Ad       Ad       `json:"ad"`
}

type Campaign struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

type AdSet struct {
	Name             string         `json:"name"`
	BillingEvent     string         `json:"billing_event"`
	OptimizationGoal string         `json:"optimization_goal"`
	BidStrategy      string         `json:"bid_strategy"`
	DailyBudget      int64          `json:"daily_budget"`
	Targeting        Targeting      `json:"targeting"`
	PromotedObject   PromotedObject `json:"promoted_object"`
}

type Targeting struct {
	GeoLocations       GeoLocations `json:"geo_locations"`
	AgeMin             int          `json:"age_min"`
	AgeMax             int          `json:"age_max"`
	Genders            []int        `json:"genders"`
	PublisherPlatforms []string     `json:"publisher_platforms"`
	DevicePlatforms    []string     `json:"device_platforms"`
}

type GeoLocations struct {
	Countries []string `json:"countries"`
}

type PromotedObject struct {
	ProductSetID string `json:"product_set_id"`
}

type Ad struct {
	Name     string   `json:"name"`
	Creative Creative `json:"creative"`
	Status   string   `json:"status"`
}

type Creative struct {
	ObjectStorySpec ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	PageID   string   `json:"page_id"`
	LinkData LinkData `json:"link_data"`
}

type LinkData struct {
	ImageURL     *string      `json:"image_url"`
	Message      string       `json:"message"`
	Headline     string       `json:"headline"`
	CallToAction CallToAction `json:"call_to_action"`
}

type CallToAction struct {
	Type string `json:"type"`
}
