package main

import (
	"kaelo/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CreatorProfileModel{},
		model.BusinessOwnerProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.RouteModel{},
		model.WaypointModel{},
		model.RoutePurchaseModel{},
		model.BusinessModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
