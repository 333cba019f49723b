package dto

type SearchFilter struct {
	Search string `query:"search"`
}

type CityQuery struct {
	City string `query:"city"`
	Days int    `query:"days"`
}

type CurrencyQuery struct {
	From   string  `query:"from"`
	To     string  `query:"to"`
	Amount float64 `query:"amount"`
}
