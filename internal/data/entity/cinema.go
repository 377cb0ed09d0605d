package entity

type Cinema struct {
	Base
	Name       string `db:"name"`
	Address    string `db:"address"`
	TotalSeats int    `db:"total_seats"`
	IsActive   bool   `db:"is_active"`
}
