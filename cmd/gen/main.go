package main

import (
	"pillmate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceModel{},
		model.CompartmentModel{},
		model.ScheduleModel{},
		model.CommandModel{},
		model.DoseEventModel{},
		model.WeightReadingModel{},
		model.PushSubscriptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
