package dao

import "gorm.io/gorm"

// seedItems is the fixed catalog of collectable categories. The image is the
// file name under the uploads directory; handlers compose the public URL.
var seedItems = []Item{
	{Title: "Lâmpadas", Image: "lampadas.svg"},
	{Title: "Pilhas e Baterias", Image: "baterias.svg"},
	{Title: "Papéis e Papelão", Image: "papeis-papelao.svg"},
	{Title: "Resíduos Eletrônicos", Image: "eletronicos.svg"},
	{Title: "Resíduos Orgânicos", Image: "organicos.svg"},
	{Title: "Óleo de Cozinha", Image: "oleo.svg"},
}

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Item{},
		&Point{},
		&PointItem{},
	)
	if err != nil {
		return err
	}

	for _, item := range seedItems {
		result := db.Where(Item{Title: item.Title}).FirstOrCreate(&item)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
