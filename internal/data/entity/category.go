package entity

import "github.com/google/uuid"

type MovieCategory struct {
	Base
	Name string `db:"name"`
}

type MovieCategoryLink struct {
	BaseSimple
	MovieID    uuid.UUID `db:"movie_id"`
	CategoryID uuid.UUID `db:"category_id"`
}
