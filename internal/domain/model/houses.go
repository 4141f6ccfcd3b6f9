package model

// HouseKingdom got.housesの1行(家名と対応する王国名)
// 家名は先頭の "House " が取り除かれた状態で保持する
type HouseKingdom struct {
	HouseName   string `db:"house_name" json:"house_name"`
	KingdomName string `db:"kingdom_name" json:"kingdom_name"`
}

// KingdomHouseCount 王国ごとの家の数の集計行
type KingdomHouseCount struct {
	KingdomName    string `json:"kingdom_name"`
	NumberOfHouses int    `json:"number_of_houses"`
}

// KingdomPopulation 王国ごとの人口(所属キャラクター数)の集計行
type KingdomPopulation struct {
	Kingdom         string `db:"kingdom" json:"kingdom"`
	TotalPopulation int    `db:"total_population" json:"total_population"`
}

// DashboardOverview ダッシュボードの概要タブに表示する合計値
type DashboardOverview struct {
	TotalHouses     int `json:"total_houses"`
	TotalPopulation int `json:"total_population"`
}
