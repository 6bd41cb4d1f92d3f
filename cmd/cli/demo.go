package main

import "github.com/ndtrung/quickadd/internal/domain"

// Demo reference data for offline mode and the seed command.
var demoPeople = []domain.Person{
	{ID: "p-me", Name: "Trung", IsOwner: true},
	{ID: "p-alice", Name: "Alice", GroupID: "g-family"},
	{ID: "p-bob", Name: "Bob", GroupID: "g-family"},
	{ID: "p-huy", Name: "Huy", GroupID: "g-roommates"},
	{ID: "p-linh", Name: "Linh", GroupID: "g-roommates"},
	{ID: "g-family", Name: "Family", IsGroup: true},
	{ID: "g-roommates", Name: "Roommates", IsGroup: true},
}

var demoAccounts = []domain.Account{
	{ID: "a-cash", Name: "Cash", Type: domain.AccountWallet},
	{ID: "a-vcb", Name: "Vietcombank", Type: domain.AccountBank},
	{ID: "a-vib-plat", Name: "VIB Platinum", Type: domain.AccountCredit, HasCashback: true},
	{ID: "a-vib-prem", Name: "VIB Premier", Type: domain.AccountCredit, HasCashback: true},
	{ID: "a-momo", Name: "Momo", Type: domain.AccountWallet},
	{ID: "a-save", Name: "Savings", Type: domain.AccountSavings},
}

var demoCategories = []domain.Category{
	{ID: "c-food", Name: "Food"},
	{ID: "c-groceries", Name: "Groceries", ParentID: "c-food"},
	{ID: "c-eating-out", Name: "Eating out", ParentID: "c-food"},
	{ID: "c-transport", Name: "Transport"},
	{ID: "c-bills", Name: "Bills"},
}

var demoShops = []domain.Shop{
	{ID: "s-coopmart", Name: "Co.opmart"},
	{ID: "s-circlek", Name: "Circle K"},
	{ID: "s-highlands", Name: "Highlands Coffee"},
}
