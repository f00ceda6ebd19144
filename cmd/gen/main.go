// Command gen regenerates the typed GORM query package from the persistence models.
package main

import (
	"resale/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.BookingModel{},
		model.PaymentModel{},
		model.WishlistModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
