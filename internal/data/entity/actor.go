package entity

import (
	"time"

	"github.com/google/uuid"
)

type Actor struct {
	Base
	Name      string     `db:"name"`
	BirthDate *time.Time `db:"birth_date"`
}

type MovieActorLink struct {
	BaseSimple
	MovieID uuid.UUID `db:"movie_id"`
	ActorID uuid.UUID `db:"actor_id"`
}
