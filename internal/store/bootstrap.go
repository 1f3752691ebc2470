package store

import "minecoin/internal/model"

// Normalize self-heals a raw aggregate read from storage and reports whether
// anything was corrected. A nil input (absent or corrupt slot) yields a fully
// seeded aggregate. Normalize never fails and is idempotent: running it on
// its own output reports dirty=false.
//
// Healing order:
//  1. absent/malformed aggregate -> seeded defaults
//  2. non-sequence collections -> coerced
//  3. users missing a status -> APPROVED (pre-workflow records)
//  4. no MASTER present -> default MASTER inserted at the front
//  5. config absent -> defaults; otherwise missing keys backfilled
func Normalize(data *model.SiteData) (*model.SiteData, bool) {
	if data == nil {
		return DefaultSiteData(), true
	}

	dirty := false

	if data.Users == nil {
		data.Users = []model.User{DefaultMaster(), DefaultAdmin()}
		dirty = true
	}

	for i := range data.Users {
		if data.Users[i].Status == "" {
			data.Users[i].Status = model.UserApproved
			dirty = true
		}
	}

	if data.Transactions == nil {
		data.Transactions = []model.Transaction{}
		dirty = true
	}

	if data.News == nil {
		data.News = DefaultNews()
		dirty = true
	}

	if !hasMaster(data.Users) {
		data.Users = append([]model.User{DefaultMaster()}, data.Users...)
		dirty = true
	}

	if data.Config == nil {
		cfg := DefaultConfig()
		data.Config = &cfg
		dirty = true
	} else if data.Config.FillDefaults(DefaultConfig()) {
		dirty = true
	}

	return data, dirty
}

func hasMaster(users []model.User) bool {
	for i := range users {
		if users[i].Role == model.RoleMaster {
			return true
		}
	}
	return false
}
