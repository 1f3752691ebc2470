package store

import (
	"time"

	"minecoin/internal/model"
)

// Seed credentials and defaults reproduced by the bootstrapper on first run.
const (
	SeedMasterID       = "master-001"
	SeedMasterUsername = "master"
	SeedMasterPassword = "master1234"
	SeedAdminID        = "admin-001"
	SeedAdminUsername  = "coinmaster"
	SeedAdminPassword  = "1234"
	SeedNewsID         = "news-1"

	DefaultCoinPrice = 10000
)

// DefaultConfig returns the default site configuration.
func DefaultConfig() model.SiteConfig {
	return model.SiteConfig{
		CoinPrice:          DefaultCoinPrice,
		AdminBankName:      "Kookmin Bank",
		AdminAccountNumber: "123-456-789012",
		AdminAccountHolder: "MineCoin Inc.",
		TechContent: "MineCoin is built on PoS 3.0, a next-generation blockchain capable of " +
			"100,000 transactions per second, with a built-in layer-2 solution that keeps gas fees minimal.",
		RoadmapContent: "2024 Q1: Whitepaper and seed sale\n2024 Q2: Mainnet launch and wallet release\n" +
			"2024 Q3: Global exchange listings\n2024 Q4: NFT marketplace opening",
		BenefitsContent: "Staking rewards for holders, governance voting rights, and ecosystem fee " +
			"discounts round out a holder-friendly policy set.",
	}
}

// DefaultMaster returns the seed MASTER account.
func DefaultMaster() model.User {
	return model.User{
		ID:            SeedMasterID,
		Username:      SeedMasterUsername,
		Password:      SeedMasterPassword,
		Name:          "Master Admin",
		Phone:         "010-1111-2222",
		BankName:      "-",
		AccountNumber: "-",
		Role:          model.RoleMaster,
		Status:        model.UserApproved,
		CreatedAt:     time.Now().UTC(),
	}
}

// DefaultAdmin returns the seed ADMIN account.
func DefaultAdmin() model.User {
	return model.User{
		ID:            SeedAdminID,
		Username:      SeedAdminUsername,
		Password:      SeedAdminPassword,
		Name:          "Site Admin",
		Phone:         "010-0000-0000",
		BankName:      "-",
		AccountNumber: "-",
		Role:          model.RoleAdmin,
		Status:        model.UserApproved,
		CreatedAt:     time.Now().UTC(),
	}
}

// DefaultNews returns the seed news feed.
func DefaultNews() []model.NewsItem {
	return []model.NewsItem{
		{
			ID:       SeedNewsID,
			Title:    "MineCoin global exchange listing announcement",
			Category: model.NewsNotice,
			Content:  "Listing on a global top-10 exchange is confirmed for Q4 2024. A detailed schedule will follow.",
			Date:     time.Date(2024, 10, 25, 9, 0, 0, 0, time.UTC),
		},
	}
}

// DefaultSiteData returns a freshly seeded aggregate.
func DefaultSiteData() *model.SiteData {
	cfg := DefaultConfig()
	return &model.SiteData{
		Users:        []model.User{DefaultMaster(), DefaultAdmin()},
		Transactions: []model.Transaction{},
		News:         DefaultNews(),
		Config:       &cfg,
	}
}
