package amazondomain

// CampaignPayload corpo de criação de uma campanha Sponsored Brands
type CampaignPayload struct {
	Campaign Campaign `json:"campaign"`
	AdGroup  AdGroup  `json:"adGroup"`
	Creative Creative `json:"creative"`
}

type Campaign struct {
	Name          string  `json:"name"`
	CampaignType  string  `json:"campaignType"`
	TargetingType string  `json:"targetingType"`
	State         string  `json:"state"`
	DailyBudget   Money   `json:"dailyBudget"`
	StartDate     string  `json:"startDate"`
	EndDate       *string `json:"endDate"`
	Bidding       Bidding `json:"bidding"`
}

type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

type Bidding struct {
	Strategy string `json:"strategy"`
}

type AdGroup struct {
	Name       string    `json:"name"`
	DefaultBid Money     `json:"defaultBid"`
	Keywords   []Keyword `json:"keywords"`
}

type Keyword struct {
	KeywordText string `json:"keywordText"`
	MatchType   string `json:"matchType"`
}

type Creative struct {
	BrandName   string      `json:"brandName"`
	Headline    string      `json:"headline"`
	Logo        Logo        `json:"logo"`
	LandingPage LandingPage `json:"landingPage"`
}

type Logo struct {
	ImageURL *string `json:"imageUrl"`
}

type LandingPage struct {
	URL string `json:"url"`
}
