package googledomain

// CampaignPayload corpo de criação de uma campanha Performance Max
type CampaignPayload struct {
	Campaign   Campaign   `json:"campaign"`
	AssetGroup AssetGroup `json:"assetGroup"`
	Targeting  Targeting  `json:"targeting"`
	Keywords   []string   `json:"keywords"`
}

type Campaign struct {
	Name                   string          `json:"name"`
	AdvertisingChannelType string          `json:"advertisingChannelType"`
	Status                 string          `json:"status"`
	CampaignBudget         CampaignBudget  `json:"campaignBudget"`
	BiddingStrategy        BiddingStrategy `json:"biddingStrategy"`
	StartDate              string          `json:"startDate"`
	EndDate                *string         `json:"endDate"`
}

type CampaignBudget struct {
	AmountMicros   int64  `json:"amountMicros"`
	DeliveryMethod string `json:"deliveryMethod"`
}

type BiddingStrategy struct {
	Type string `json:"type"`
}

type AssetGroup struct {
	Name         string   `json:"name"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Images       []Asset  `json:"images"`
	Logo         *Asset   `json:"logo"`
	FinalURLs    []string `json:"finalUrls"`
}

type Asset struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

type Targeting struct {
	GeoTargets      []string `json:"geoTargets"`
	LanguageTargets []string `json:"languageTargets"`
	AudienceTargets []string `json:"audienceTargets"`
}
