package model

// SiteConfig is the singleton site configuration. Updates merge partial
// fields onto the existing instance; the singleton is never fully replaced.
type SiteConfig struct {
	CoinPrice          int64  `bson:"coinPrice" json:"coinPrice"`
	AdminBankName      string `bson:"adminBankName" json:"adminBankName"`
	AdminAccountNumber string `bson:"adminAccountNumber" json:"adminAccountNumber"`
	AdminAccountHolder string `bson:"adminAccountHolder" json:"adminAccountHolder"`
	TechContent        string `bson:"techContent" json:"techContent"`
	RoadmapContent     string `bson:"roadmapContent" json:"roadmapContent"`
	BenefitsContent    string `bson:"benefitsContent" json:"benefitsContent"`
}

// SiteConfigUpdate is a partial config change. Nil fields are left unchanged.
type SiteConfigUpdate struct {
	CoinPrice          *int64  `json:"coinPrice,omitempty"`
	AdminBankName      *string `json:"adminBankName,omitempty"`
	AdminAccountNumber *string `json:"adminAccountNumber,omitempty"`
	AdminAccountHolder *string `json:"adminAccountHolder,omitempty"`
	TechContent        *string `json:"techContent,omitempty"`
	RoadmapContent     *string `json:"roadmapContent,omitempty"`
	BenefitsContent    *string `json:"benefitsContent,omitempty"`
}

// Apply merges the non-nil fields of the update onto c.
func (c *SiteConfig) Apply(u *SiteConfigUpdate) {
	if u.CoinPrice != nil {
		c.CoinPrice = *u.CoinPrice
	}
	if u.AdminBankName != nil {
		c.AdminBankName = *u.AdminBankName
	}
	if u.AdminAccountNumber != nil {
		c.AdminAccountNumber = *u.AdminAccountNumber
	}
	if u.AdminAccountHolder != nil {
		c.AdminAccountHolder = *u.AdminAccountHolder
	}
	if u.TechContent != nil {
		c.TechContent = *u.TechContent
	}
	if u.RoadmapContent != nil {
		c.RoadmapContent = *u.RoadmapContent
	}
	if u.BenefitsContent != nil {
		c.BenefitsContent = *u.BenefitsContent
	}
}

// FillDefaults backfills zero-valued keys from the given defaults without
// touching keys the operator has already set.
func (c *SiteConfig) FillDefaults(d SiteConfig) (changed bool) {
	if c.CoinPrice == 0 {
		c.CoinPrice = d.CoinPrice
		changed = true
	}
	if c.AdminBankName == "" {
		c.AdminBankName = d.AdminBankName
		changed = true
	}
	if c.AdminAccountNumber == "" {
		c.AdminAccountNumber = d.AdminAccountNumber
		changed = true
	}
	if c.AdminAccountHolder == "" {
		c.AdminAccountHolder = d.AdminAccountHolder
		changed = true
	}
	if c.TechContent == "" {
		c.TechContent = d.TechContent
		changed = true
	}
	if c.RoadmapContent == "" {
		c.RoadmapContent = d.RoadmapContent
		changed = true
	}
	if c.BenefitsContent == "" {
		c.BenefitsContent = d.BenefitsContent
		changed = true
	}
	return changed
}

// SiteData is the aggregate root: the whole dataset persisted as one unit in
// the file-backed store and a conceptual grouping in the mongo-backed store.
type SiteData struct {
	Users        []User        `bson:"users" json:"users"`
	Transactions []Transaction `bson:"transactions" json:"transactions"`
	News         []NewsItem    `bson:"news" json:"news"`
	Config       *SiteConfig   `bson:"config" json:"config"`
}
