package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"equiprent.GO/config"
	"equiprent.GO/model/entity"
	"equiprent.GO/model/repository/state"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with a starter inventory",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		st, err := state.NewStore(db)
		if err != nil {
			fmt.Printf("State store init failed: %v\n", err)
			return
		}
		seeded := false
		_, err = st.Mutate(func(data entity.AppData) (entity.AppData, error) {
			if len(data.Items) > 0 {
				return data, nil
			}
			data.Items = starterItems()
			seeded = true
			return data, nil
		})
		if err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			return
		}
		if !seeded {
			fmt.Println("Catalog already has items, nothing seeded.")
			return
		}
		fmt.Println("Seeded starter inventory.")
	},
}

func starterItems() []entity.Item {
	return []entity.Item{
		{ID: uuid.NewString(), Name: "Scaffolding Set", Category: "scaffolding", RatePerUnit: 150, AvailableQty: 20},
		{ID: uuid.NewString(), Name: "Power Generator", Category: "power", RatePerUnit: 500, AvailableQty: 5},
		{ID: uuid.NewString(), Name: "Forklift", Category: "heavy", RatePerUnit: 1200, AvailableQty: 2},
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
