// Command gen regenerates the type-safe query code for the tables the
// repositories address through plain CRUD. PostGIS and joined reads stay in SQL.
package main

import (
	"placeswipe/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.PlaceImageModel{},
		model.SwipeModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
